// ssbhlint audits folders of SSBH model file dumps for cross-file
// inconsistencies and reconciles material parameters against the shader
// program database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/ssbhlint/internal/config"
	"github.com/Faultbox/ssbhlint/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	// Flags come between the command and its positional arguments.
	flag.CommandLine.Parse(os.Args[2:])
	args := flag.Args()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "check":
		cmdCheck(cfg, args)
	case "params":
		cmdParams(cfg, args)
	case "fix":
		cmdFix(cfg, args)
	case "anims":
		cmdAnims(args)
	case "presets":
		cmdPresets(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ssbhlint - SSBH model folder validation utility

Usage:
  ssbhlint <command> [options]

Commands:
  check <workspace>                  Validate every model folder under a directory
  params <folder>                    Report missing and unused material parameters
  fix <folder> [add|remove|all]      Add missing and/or remove unused parameters
  anims <workspace> <model-folder>   Rank animation folders by path affinity
  presets <file>                     List material presets, seeding defaults if missing
  help                               Show this help

Flags (between the command and its arguments):
  -config <file>     Config file path
  -shaderdb <file>   Shader program database
  -debug             Enable debug logging
  -logfile <file>    Write logs to a file

Folders hold JSON dumps of the binary files (model.numatb.json etc.).

Examples:
  ssbhlint check ./fighter/mario
  ssbhlint check -shaderdb shaders.json ./fighter/mario
  ssbhlint params ./fighter/mario/model/body/c00
  ssbhlint fix ./fighter/mario/model/body/c00 add`)
}
