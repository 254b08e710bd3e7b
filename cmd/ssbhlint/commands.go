package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/ssbhlint/internal/config"
	"github.com/Faultbox/ssbhlint/internal/loader"
	"github.com/Faultbox/ssbhlint/internal/logger"
	"github.com/Faultbox/ssbhlint/internal/material"
	"github.com/Faultbox/ssbhlint/internal/presets"
	"github.com/Faultbox/ssbhlint/internal/validation"
	"github.com/Faultbox/ssbhlint/internal/workspace"
	"github.com/Faultbox/ssbhlint/pkg/formats"
	"github.com/Faultbox/ssbhlint/pkg/shaderdb"
)

func loadDatabase(cfg *config.Config) *shaderdb.Database {
	if cfg.Validation.ShaderDatabase == "" {
		logger.Sugar.Warn("No shader database configured, shader checks will be skipped")
		return shaderdb.New(nil)
	}
	db, err := shaderdb.LoadFile(cfg.Validation.ShaderDatabase)
	if err != nil {
		logger.Sugar.Errorw("Failed to load shader database",
			"path", cfg.Validation.ShaderDatabase, "error", err)
		os.Exit(1)
	}
	logger.Sugar.Infow("Loaded shader database",
		"path", cfg.Validation.ShaderDatabase, "programs", db.Len())
	return db
}

func cmdCheck(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ssbhlint check <workspace>")
		os.Exit(1)
	}

	db := loadDatabase(cfg)
	states, err := loader.LoadWorkspace(args[0])
	if err != nil {
		logger.Sugar.Errorw("Failed to load workspace", "path", args[0], "error", err)
		os.Exit(1)
	}
	logger.Sugar.Infow("Loaded workspace", "path", args[0], "folders", len(states))

	total := 0
	for _, state := range states {
		state.Validate(db, cfg.Validation.DefaultTextures)
		total += printReport(state)
	}
	if total == 0 {
		fmt.Println("No issues found.")
		return
	}
	fmt.Printf("%d issue(s) found.\n", total)
	os.Exit(1)
}

func printReport(state *workspace.FolderState) int {
	report := state.Validation
	if report.IsEmpty() {
		return 0
	}
	name := workspace.FolderDisplayName(state.Model.Path)
	count := 0
	emit := func(kind string, errs []error) {
		for _, err := range errs {
			fmt.Printf("%s: %s: %v\n", name, kind, err)
			count++
		}
	}
	emit("mesh", meshToErrors(report.MeshErrors))
	emit("skel", report.SkelErrors)
	emit("matl", matlToErrors(report.MatlErrors))
	emit("modl", report.ModlErrors)
	emit("adj", report.AdjErrors)
	emit("anim", report.AnimErrors)
	emit("hlpb", report.HlpbErrors)
	emit("nutexb", nutexbToErrors(report.NutexbErrors))
	emit("meshex", report.MeshExErrors)
	return count
}

func meshToErrors(errs []validation.MeshError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

func matlToErrors(errs []validation.MatlError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

func nutexbToErrors(errs []validation.NutexbError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

func cmdParams(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ssbhlint params <folder>")
		os.Exit(1)
	}

	db := loadDatabase(cfg)
	folder, err := loader.LoadFolder(args[0])
	if err != nil {
		logger.Sugar.Errorw("Failed to load folder", "path", args[0], "error", err)
		os.Exit(1)
	}
	matl := folder.FindMatl()
	if matl == nil {
		fmt.Println("No model.numatb in folder.")
		os.Exit(1)
	}

	for _, entry := range matl.Entries {
		program, ok := db.Get(entry.ShaderLabel)
		if !ok {
			fmt.Printf("%s: shader %q not found in database\n",
				entry.MaterialLabel, entry.ShaderProgramKey())
			continue
		}
		missing := material.MissingParameters(&entry, &program)
		unused := material.UnusedParameters(&entry, &program)
		if len(missing) == 0 && len(unused) == 0 {
			fmt.Printf("%s: parameters match shader %q\n",
				entry.MaterialLabel, entry.ShaderProgramKey())
			continue
		}
		for _, id := range missing {
			fmt.Printf("%s: missing %s\n", entry.MaterialLabel, describeParam(id, &program))
		}
		for _, id := range unused {
			fmt.Printf("%s: unused %s\n", entry.MaterialLabel, describeParam(id, &program))
		}
	}
}

// describeParam renders a parameter with its researched display name and,
// for vectors, the labels of the components the shader reads.
func describeParam(id formats.ParamID, program *shaderdb.Program) string {
	s := id.String()
	if desc := id.Description(); desc != "" {
		s += " (" + desc + ")"
	}
	if id.Kind() != formats.KindVector4 {
		return s
	}
	channels := program.AccessedChannels(id)
	labels := formats.Vector4ComponentLabels(id)
	var used []string
	for i, accessed := range channels {
		if accessed && labels[i] != "" {
			used = append(used, labels[i])
		}
	}
	if len(used) > 0 {
		s += ": " + strings.Join(used, ", ")
	}
	return s
}

func cmdFix(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ssbhlint fix <folder> [add|remove|all]")
		os.Exit(1)
	}
	mode := "all"
	if len(args) > 1 {
		mode = args[1]
	}
	if mode != "add" && mode != "remove" && mode != "all" {
		fmt.Fprintf(os.Stderr, "Unknown fix mode: %s\n", mode)
		os.Exit(1)
	}

	db := loadDatabase(cfg)
	folder, err := loader.LoadFolder(args[0])
	if err != nil {
		logger.Sugar.Errorw("Failed to load folder", "path", args[0], "error", err)
		os.Exit(1)
	}
	matl := folder.FindMatl()
	if matl == nil {
		fmt.Println("No model.numatb in folder.")
		os.Exit(1)
	}

	changed := false
	for i := range matl.Entries {
		entry := &matl.Entries[i]
		program, ok := db.Get(entry.ShaderLabel)
		if !ok {
			logger.Sugar.Warnw("Shader not found in database, skipping entry",
				"material", entry.MaterialLabel, "shader", entry.ShaderProgramKey())
			continue
		}
		if mode == "add" || mode == "all" {
			if missing := material.MissingParameters(entry, &program); len(missing) > 0 {
				material.AddParameters(entry, missing)
				logger.Sugar.Infow("Added parameters",
					"material", entry.MaterialLabel, "count", len(missing))
				changed = true
			}
		}
		if mode == "remove" || mode == "all" {
			if unused := material.UnusedParameters(entry, &program); len(unused) > 0 {
				material.RemoveParameters(entry, unused)
				logger.Sugar.Infow("Removed parameters",
					"material", entry.MaterialLabel, "count", len(unused))
				changed = true
			}
		}
	}

	if !changed {
		fmt.Println("Nothing to fix.")
		return
	}
	if err := loader.SaveMatl(args[0], formats.MatlFileName, matl); err != nil {
		logger.Sugar.Errorw("Failed to save", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", filepath.Join(args[0], formats.MatlFileName))
}

func cmdAnims(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: ssbhlint anims <workspace> <model-folder>")
		os.Exit(1)
	}

	states, err := loader.LoadWorkspace(args[0])
	if err != nil {
		logger.Sugar.Errorw("Failed to load workspace", "path", args[0], "error", err)
		os.Exit(1)
	}

	model, err := loader.LoadFolder(args[1])
	if err != nil {
		logger.Sugar.Errorw("Failed to load folder", "path", args[1], "error", err)
		os.Exit(1)
	}

	ranked := workspace.FindAnimFolders(workspace.NewFolderState(model, nil), states)
	if len(ranked) == 0 {
		fmt.Println("No animation folders found.")
		return
	}
	// Weakest match prints first, best last.
	for _, r := range ranked {
		fmt.Println(workspace.FolderDisplayName(r.Folder.Model.Path))
	}
}

func cmdPresets(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ssbhlint presets <file>")
		os.Exit(1)
	}

	entries, err := presets.Load(args[0])
	if err != nil {
		logger.Sugar.Errorw("Failed to load presets", "path", args[0], "error", err)
		os.Exit(1)
	}
	for _, entry := range entries {
		fmt.Printf("%s (%s)\n", entry.MaterialLabel, entry.ShaderLabel)
	}
}
