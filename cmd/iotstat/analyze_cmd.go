package main

import (
	"fmt"
	"log"
	"os"

	"github.com/blagojts/viper"
	"github.com/spf13/cobra"

	"github.com/iotools/iotstat/internal/telemetry"
	"github.com/iotools/iotstat/pkg/data/source"
	"github.com/iotools/iotstat/pkg/pipeline"
	"github.com/iotools/iotstat/pkg/report"
)

func initAnalyzeCMD() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute ranked statistics over a sensor log export",
		Run:   runAnalyze,
	}
	addAnalyzeFlags(cmd.PersistentFlags())
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, fmt.Errorf("could not bind flags to configuration: %v", err)
	}
	return cmd, nil
}

func runAnalyze(cmd *cobra.Command, args []string) {
	spec, err := parseConfig(viper.GetViper())
	if err != nil {
		log.Fatal(err)
	}

	if spec.profileFile != "" {
		go profileCPUAndMem(spec.profileFile)
	}

	p, err := pipeline.New(spec.filter, spec.statistics)
	if err != nil {
		log.Fatal(err)
	}

	var recorder *telemetry.RunRecorder
	if spec.debug > 0 {
		recorder = telemetry.NewRunRecorder()
		p.SetRecorder(recorder)
	}

	src, err := source.NewFileRowSource(spec.file)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	results, err := p.Run(src)
	if err != nil {
		log.Fatal(err)
	}

	switch spec.format {
	case formatYAML:
		err = report.WriteYAML(os.Stdout, results)
	default:
		err = report.WriteText(os.Stdout, results)
	}
	if err != nil {
		log.Fatal(err)
	}

	if recorder != nil {
		fmt.Fprintln(os.Stderr, "row processing latencies:")
		if err := recorder.Write(os.Stderr); err != nil {
			log.Fatal(err)
		}
	}
}
