// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/guidegen/internal/config"
	"github.com/temirov/guidegen/internal/corpus"
	"github.com/temirov/guidegen/internal/gemini"
	"github.com/temirov/guidegen/internal/generate"
	"github.com/temirov/guidegen/internal/output"
	"github.com/temirov/guidegen/internal/project"
	"github.com/temirov/guidegen/internal/scan"
	"github.com/temirov/guidegen/internal/services/clipboard"
	"github.com/temirov/guidegen/internal/tokenizer"
	"github.com/temirov/guidegen/internal/types"
	"github.com/temirov/guidegen/internal/utils"
)

const (
	rootUse              = "guidegen"
	rootShortDescription = "generate deployer and developer guides from a codebase"
	rootLongDescription  = `guidegen scans a repository, assembles its text files into a single context
document, and asks a Gemini model to write a structured Deployer & Developer
Guide. Sensitive files are always excluded, .gitignore patterns are honored
with coarse substring matching, and generation falls back across models until
one produces text.`
	rootUsageExample = `  # Generate a guide for the current directory
  guidegen

  # Scan another repository and choose the output file
  guidegen --path ../service --output docs/Service_Guide.md

  # Force a single model and report the context token estimate
  guidegen --model gemini-2.0-flash-exp --tokens`

	pathFlagName        = "path"
	pathFlagShorthand   = "p"
	outputFlagName      = "output"
	outputFlagShorthand = "o"
	modelFlagName       = "model"
	modelFlagShorthand  = "m"
	tokensFlagName      = "tokens"
	copyFlagName        = "copy"
	configFlagName      = "config"
	versionFlagName     = "version"

	pathFlagDescription    = "repository root to scan"
	outputFlagDescription  = "output file for the generated guide"
	modelFlagDescription   = "force a single generation model instead of the fallback pair"
	tokensFlagDescription  = "include an estimated token count of the context"
	copyFlagDescription    = "copy the generated guide to the clipboard"
	configFlagDescription  = "explicit configuration file path"
	versionFlagDescription = "display application version"
	versionTemplate        = "guidegen version: %s\n"

	defaultScanPath   = "."
	defaultOutputPath = "Deployer_Guide.md"

	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write a default guidegen configuration file. The local target places
` + utils.ConfigFileName + ` in the working directory; the global target places
` + utils.GlobalConfigFileName + ` under ~/` + utils.GlobalConfigDirectoryName + `. Existing files are kept unless --force is given.`
	initTargetFlagName        = "target"
	initTargetFlagDescription = "configuration target: local or global"
	initForceFlagName         = "force"
	initForceFlagDescription  = "overwrite an existing configuration file"
	initWrittenMessageFormat  = "Configuration written to: %s"

	scanningMessageFormat        = "Scanning codebase: %s"
	projectDetectedMessageFormat = "Detected project: %s"
	filesFoundMessageFormat      = "Found %d files to analyze."
	contextSizeMessageFormat     = "Total context size: %s characters"
	tokenEstimateMessageFormat   = "Estimated context tokens: %s (%s)"
	generatingMessage            = "Generating documentation..."
	documentSavedMessageFormat   = "Documentation saved to: %s"
	clipboardCopiedMessage       = "Copied generated guide to the clipboard."
	clipboardWarningFormat       = "Warning: failed to copy to clipboard: %v"
	reviewReminderMessage        = "AI-generated documentation - Human review recommended."
	summaryMessageFormat         = "Summary: project=%s files=%d chars=%s tokens=%s model=%s output=%s"
	tokensDisabledPlaceholder    = "-"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	errorAbsolutePathFormat     = "abs failed for '%s': %w"
	errorPathMissingFormat      = "path '%s' does not exist"
	errorStatFormat             = "stat failed for '%s': %w"
)

// rootOptions holds the effective flag values of the root command.
type rootOptions struct {
	scanPath        string
	outputPath      string
	forcedModel     string
	countTokens     bool
	copyToClipboard bool
	configPath      string
}

// pipelineDependencies carries the collaborators of the generation pipeline.
// Tests replace individual fields; production code uses defaultPipelineDependencies.
type pipelineDependencies struct {
	logger            *zap.Logger
	workingDirectory  string
	lookupEnvironment func(string) (string, bool)
	newGenerator      func(apiKey string) generate.ContentGenerator
	clipboardCopier   clipboard.Copier
}

// defaultPipelineDependencies wires the production collaborators.
func defaultPipelineDependencies(applicationLogger *zap.Logger) pipelineDependencies {
	return pipelineDependencies{
		logger: applicationLogger,
		newGenerator: func(apiKey string) generate.ContentGenerator {
			return gemini.NewClient(nil).WithAPIKey(apiKey)
		},
		clipboardCopier: clipboard.NewSystemService(),
	}
}

// applicationLogger returns the configured logger or a no-op replacement.
func (dependencies pipelineDependencies) applicationLogger() *zap.Logger {
	if dependencies.logger == nil {
		return zap.NewNop()
	}
	return dependencies.logger
}

// Execute runs the guidegen application.
func Execute(applicationLogger *zap.Logger) error {
	rootCommand := createRootCommand(defaultPipelineDependencies(applicationLogger))
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command and its subcommands.
func createRootCommand(dependencies pipelineDependencies) *cobra.Command {
	var showVersion bool
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := resolveWorkingDirectory(dependencies)
			if workingDirectoryError != nil {
				return workingDirectoryError
			}
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: options.configPath,
			})
			if configurationError != nil {
				return configurationError
			}
			applyConfigurationDefaults(command, &options, configuration)
			_, runError := runGuideGeneration(command.Context(), options, workingDirectory, dependencies)
			return runError
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().StringVarP(&options.scanPath, pathFlagName, pathFlagShorthand, defaultScanPath, pathFlagDescription)
	rootCommand.Flags().StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, defaultOutputPath, outputFlagDescription)
	rootCommand.Flags().StringVarP(&options.forcedModel, modelFlagName, modelFlagShorthand, "", modelFlagDescription)
	registerBooleanFlag(rootCommand.Flags(), &options.countTokens, tokensFlagName, false, tokensFlagDescription)
	registerBooleanFlag(rootCommand.Flags(), &options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(dependencies pipelineDependencies) *cobra.Command {
	var targetName string
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:          initUse,
		Short:        initShortDescription,
		Long:         initLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target:           config.InitTarget(targetName),
				Force:            forceOverwrite,
				WorkingDirectory: dependencies.workingDirectory,
			})
			if initializeError != nil {
				return initializeError
			}
			dependencies.applicationLogger().Info(fmt.Sprintf(initWrittenMessageFormat, writtenPath))
			return nil
		},
	}

	initCommand.Flags().StringVar(&targetName, initTargetFlagName, string(config.InitTargetLocal), initTargetFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &forceOverwrite, initForceFlagName, false, initForceFlagDescription)
	return initCommand
}

// resolveWorkingDirectory returns the configured working directory or asks the process.
func resolveWorkingDirectory(dependencies pipelineDependencies) (string, error) {
	if dependencies.workingDirectory != "" {
		return dependencies.workingDirectory, nil
	}
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return "", fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	return workingDirectory, nil
}

// applyConfigurationDefaults overlays configuration file values onto flags the
// user did not set explicitly. Explicit flags always win.
func applyConfigurationDefaults(command *cobra.Command, options *rootOptions, configuration config.ApplicationConfiguration) {
	flags := command.Flags()
	if !flags.Changed(pathFlagName) && configuration.Path != "" {
		options.scanPath = configuration.Path
	}
	if !flags.Changed(outputFlagName) && configuration.Output != "" {
		options.outputPath = configuration.Output
	}
	if !flags.Changed(modelFlagName) && configuration.Model != "" {
		options.forcedModel = configuration.Model
	}
	if !flags.Changed(tokensFlagName) && configuration.Tokens != nil {
		options.countTokens = *configuration.Tokens
	}
	if !flags.Changed(copyFlagName) && configuration.Copy != nil {
		options.copyToClipboard = *configuration.Copy
	}
}

// runGuideGeneration executes the linear pipeline: resolve the credential,
// scan the repository, assemble the context, generate the guide with model
// fallback, and save the document. The returned summary reflects a completed
// run; any error aborts the run with no document written.
func runGuideGeneration(
	ctx context.Context,
	options rootOptions,
	workingDirectory string,
	dependencies pipelineDependencies,
) (types.RunSummary, error) {
	logger := dependencies.applicationLogger()

	scanRoot, scanRootError := validateScanRoot(options.scanPath)
	if scanRootError != nil {
		return types.RunSummary{}, scanRootError
	}

	apiKey, credentialError := config.ResolveAPIKey(config.ResolveOptions{
		WorkingDirectory:  workingDirectory,
		LookupEnvironment: dependencies.lookupEnvironment,
	})
	if credentialError != nil {
		return types.RunSummary{}, credentialError
	}

	logger.Info(fmt.Sprintf(scanningMessageFormat, scanRoot))
	projectName := project.DetectName(scanRoot)
	logger.Info(fmt.Sprintf(projectDetectedMessageFormat, projectName))

	ruleSet := scan.NewRuleSet(config.LoadRootIgnorePatterns(scanRoot))
	scanResult, scanError := scan.Collect(scanRoot, ruleSet)
	if scanError != nil {
		return types.RunSummary{}, scanError
	}
	logger.Info(fmt.Sprintf(filesFoundMessageFormat, scanResult.FileCount()))
	if scanResult.FileCount() == 0 {
		return types.RunSummary{}, scan.ErrNoFilesCollected
	}

	contextDocument := corpus.BuildContext(scanResult.Files)
	characterCount := corpus.CharacterCount(contextDocument)
	logger.Info(fmt.Sprintf(contextSizeMessageFormat, utils.FormatThousands(characterCount)))

	tokenCountText := tokensDisabledPlaceholder
	tokenCount := 0
	if options.countTokens {
		counter, encodingName, counterError := tokenizer.NewCounter(tokenizer.Config{Model: options.forcedModel})
		if counterError != nil {
			return types.RunSummary{}, counterError
		}
		countedTokens, countError := counter.CountString(contextDocument)
		if countError != nil {
			return types.RunSummary{}, countError
		}
		tokenCount = countedTokens
		tokenCountText = utils.FormatThousands(countedTokens)
		logger.Info(fmt.Sprintf(tokenEstimateMessageFormat, tokenCountText, encodingName))
	}

	logger.Info(generatingMessage)
	orchestrator := generate.NewOrchestrator(dependencies.newGenerator(apiKey), logger)
	documentText, usedModel, generationError := orchestrator.GenerateDocumentation(ctx, contextDocument, options.forcedModel)
	if generationError != nil {
		return types.RunSummary{}, generationError
	}

	if saveError := output.SaveDocument(options.outputPath, documentText); saveError != nil {
		return types.RunSummary{}, saveError
	}
	logger.Info(fmt.Sprintf(documentSavedMessageFormat, options.outputPath))

	if options.copyToClipboard && dependencies.clipboardCopier != nil {
		if copyError := dependencies.clipboardCopier.Copy(documentText); copyError != nil {
			logger.Warn(fmt.Sprintf(clipboardWarningFormat, copyError))
		} else {
			logger.Info(clipboardCopiedMessage)
		}
	}

	runSummary := types.RunSummary{
		ProjectName:    projectName,
		FilesCollected: scanResult.FileCount(),
		ContextChars:   characterCount,
		ContextTokens:  tokenCount,
		Model:          usedModel,
		OutputPath:     options.outputPath,
	}
	logger.Info(fmt.Sprintf(
		summaryMessageFormat,
		runSummary.ProjectName,
		runSummary.FilesCollected,
		utils.FormatThousands(runSummary.ContextChars),
		tokenCountText,
		runSummary.Model,
		runSummary.OutputPath,
	))
	logger.Info(reviewReminderMessage)
	return runSummary, nil
}

// validateScanRoot resolves the scan path to absolute form and confirms it exists.
func validateScanRoot(scanPath string) (string, error) {
	absolutePath, absolutePathError := filepath.Abs(scanPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, scanPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	if _, statError := os.Stat(cleanPath); statError != nil {
		if os.IsNotExist(statError) {
			return "", fmt.Errorf(errorPathMissingFormat, scanPath)
		}
		return "", fmt.Errorf(errorStatFormat, scanPath, statError)
	}
	return cleanPath, nil
}
