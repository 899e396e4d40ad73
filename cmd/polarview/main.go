package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/uyouii/polarview/dashboard"
	"github.com/uyouii/polarview/gistemp"
	"github.com/uyouii/polarview/model"
	"github.com/uyouii/polarview/utils"
	"go.uber.org/zap"
)

func main() {
	controls := dashboard.DefaultControls()

	viewName := flag.String("view", dashboard.ViewSummary.String(), "View to render: temperature, ice, sealevel or summary")
	csvPath := flag.String("csv", "", "GISTEMP csv file for the temperature view, - for stdin")
	tempInc := flag.Float64("temp", controls.TemperatureIncrease.Default, "Temperature increase in °C for the ice view")
	years := flag.Int("years", int(controls.HorizonYears.Default), "Projection horizon in years for the ice view")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger, err := utils.NewLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := utils.WithLogger(context.Background(), logger)

	if err := run(ctx, *viewName, *csvPath, *tempInc, *years, os.Stdout); err != nil {
		logger.Error("polarview failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, viewName, csvPath string, tempInc float64, years int, out io.Writer) error {
	view, err := dashboard.ParseView(viewName)
	if err != nil {
		return err
	}

	req := dashboard.Request{View: view}
	switch view {
	case dashboard.ViewTemperature:
		series, err := loadSeries(ctx, csvPath)
		if err != nil {
			return err
		}
		req.Series = series
	case dashboard.ViewIceSimulation:
		req.Ice = &model.IceProjectionRequest{TemperatureIncrease: tempInc, HorizonYears: years}
	}

	page, err := dashboard.NewDashboard().Render(ctx, req)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(page)
}

func loadSeries(ctx context.Context, path string) (*model.TemperatureSeries, error) {
	if path == "" {
		return nil, fmt.Errorf("the temperature view needs -csv")
	}
	if path == "-" {
		return gistemp.Parse(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gistemp.Parse(ctx, f)
}
