package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/avierra/alloy-blend/internal/blend"
	"github.com/avierra/alloy-blend/internal/config"
	"github.com/avierra/alloy-blend/internal/server"
	"github.com/avierra/alloy-blend/pkg/adapters"
	"github.com/avierra/alloy-blend/pkg/constants"
	"github.com/avierra/alloy-blend/pkg/output"
	"github.com/avierra/alloy-blend/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		cfg.OutputPaths = []string{loggingConfig.OutputFile}
		cfg.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return cfg.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to the blend plan file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot optimization")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to the server configuration file")
	addr := flag.String("addr", "", "listen address override for the HTTP API")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *addr, *logLevel)
		return
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load blend plan at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Resolve preset references before anything looks at compositions.
	if err := conf.ApplyPresets(); err != nil {
		logger.Fatal("failed to resolve material presets",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Display any warnings, then enforce hard input errors.
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Plan warning: "+warning,
			zap.String("op", "main"),
		)
	}

	lotInputs := make([]validation.LotInput, len(conf.Materials))
	for i, material := range conf.Materials {
		lotInputs[i] = validation.LotInput{
			Name:        material.Name,
			Price:       material.UnitPrice(),
			Stock:       material.Stock,
			Composition: material.Composition,
		}
	}
	problems := validation.ValidateLots(lotInputs)
	problems = append(problems, validation.ValidateOrder(
		conf.Order.TotalWeight, conf.Order.TargetComposition, conf.Elements)...)
	if len(problems) > 0 {
		for _, problem := range problems {
			logger.Error("Plan error: "+problem,
				zap.String("op", "main"),
			)
		}
		logger.Fatal("blend plan failed validation",
			zap.String("op", "main"),
			zap.Int("errors", len(problems)),
		)
	}

	lots := adapters.MaterialsToLots(conf.Materials, conf.Elements)
	order := adapters.OrderToSpec(conf.Order)

	result := blend.Optimize(logger, lots, order, conf.Elements, conf.Optimization.ScarcityCapEnabled())
	if !result.Success {
		logger.Error(result.Message,
			zap.String("op", "main"),
		)
		fmt.Printf("optimization failed: %s\n", result.Message)
		os.Exit(1)
	}

	report, err := blend.BuildReport(lots, result.Weights, order, conf.Elements)
	if err != nil {
		logger.Fatal("failed to interpret solution",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(report)
	case constants.OutputFormatCSV:
		output.CsvFormat(report)
	}
}

func runServer(configLocation, addrOverride, logLevelOverride string) {
	serverConf, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	logger, err := initializeLogger(serverConf.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	address := serverConf.Address
	if addrOverride != "" {
		address = addrOverride
	}

	handler := server.NewHandler(logger, serverConf.UploadSizeBytes(), version)
	logger.Info("starting blend API",
		zap.String("op", "main"),
		zap.String("address", address),
	)
	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
