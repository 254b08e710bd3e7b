package formats

// Description returns a human readable label for the parameter, or an empty
// string for parameters with no researched meaning.
func (p ParamID) Description() string {
	switch p {
	case ParamCustomVector0:
		return "Alpha Params"
	case ParamCustomVector3:
		return "Emission Color Scale"
	case ParamCustomVector6:
		return "UV Transform Layer 1"
	case ParamCustomVector8:
		return "Final Color Scale"
	case ParamCustomVector11:
		return "Subsurface Color"
	case ParamCustomVector13:
		return "Diffuse Color Scale"
	case ParamCustomVector14:
		return "Rim Color"
	case ParamCustomVector18:
		return "Sprite Sheet Params"
	case ParamCustomVector30:
		return "Subsurface Params"
	case ParamCustomVector31:
		return "UV Transform Layer 2"
	case ParamCustomVector32:
		return "UV Transform Layer 3"
	case ParamCustomVector47:
		return "Prm Color"
	case ParamTexture0:
		return "Col Layer 1"
	case ParamTexture1:
		return "Col Layer 2"
	case ParamTexture2:
		return "Irradiance Cube"
	case ParamTexture3:
		return "Ambient Occlusion"
	case ParamTexture4:
		return "Nor"
	case ParamTexture5:
		return "Emissive Layer 1"
	case ParamTexture6:
		return "Prm"
	case ParamTexture7:
		return "Specular Cube"
	case ParamTexture8:
		return "Diffuse Cube"
	case ParamTexture9:
		return "Baked Lighting"
	case ParamTexture10:
		return "Diffuse Layer 1"
	case ParamTexture11:
		return "Diffuse Layer 2"
	case ParamTexture12:
		return "Diffuse Layer 3"
	case ParamTexture14:
		return "Emissive Layer 2"
	case ParamCustomFloat1:
		return "Ambient Occlusion Map Intensity"
	case ParamCustomFloat10:
		return "Anisotropy"
	case ParamCustomBoolean1:
		return "PRM Alpha"
	case ParamCustomBoolean2:
		return "Alpha Override"
	case ParamCustomBoolean3:
		return "Direct Specular"
	case ParamCustomBoolean4:
		return "Indirect Specular"
	case ParamCustomBoolean9:
		return "Sprite Sheet"
	default:
		return ""
	}
}

// Vector4ComponentLabels returns per-component labels for a Vector4
// parameter. Color-like vectors label as RGBA, transforms and params use
// their researched meanings, everything else falls back to XYZW.
func Vector4ComponentLabels(p ParamID) [4]string {
	switch p {
	case ParamCustomVector1, ParamCustomVector2, ParamCustomVector3,
		ParamCustomVector5, ParamCustomVector7, ParamCustomVector8,
		ParamCustomVector9, ParamCustomVector10, ParamCustomVector13,
		ParamCustomVector15, ParamCustomVector19, ParamCustomVector20,
		ParamCustomVector21, ParamCustomVector22, ParamCustomVector23,
		ParamCustomVector24, ParamCustomVector35, ParamCustomVector43,
		ParamCustomVector44, ParamCustomVector45:
		return [4]string{"Red", "Green", "Blue", "Alpha"}
	case ParamCustomVector0:
		return [4]string{"Min Texture Alpha", "Y", "Z", "W"}
	case ParamCustomVector6, ParamCustomVector31, ParamCustomVector32:
		return [4]string{"Scale U", "Scale V", "Translate U", "Translate V"}
	case ParamCustomVector11:
		return [4]string{"Red", "Green", "Blue", ""}
	case ParamCustomVector14:
		return [4]string{"Red", "Green", "Blue", "Blend Factor"}
	case ParamCustomVector18:
		return [4]string{"Column Count", "Row Count", "Frames per Sprite", "Sprite Count"}
	case ParamCustomVector30:
		return [4]string{"Blend Factor", "Smooth Factor", "", ""}
	case ParamCustomVector47:
		return [4]string{"Metalness", "Roughness", "Ambient Occlusion", "Specular"}
	default:
		return [4]string{"X", "Y", "Z", "W"}
	}
}
