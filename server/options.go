package server

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Options struct {
	Addr             string
	HistorySize      int
	SweepWorkers     int
	ProgressInterval time.Duration
	FluidPresetFile  string
}

func LoadOptions(path string) (Options, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return Options{}, fmt.Errorf("load config %s: %w", path, err)
	}
	sec := file.Section("server")
	opts := Options{
		Addr:             sec.Key("Addr").MustString(":9000"),
		HistorySize:      sec.Key("HistorySize").MustInt(20),
		SweepWorkers:     sec.Key("SweepWorkers").MustInt(4),
		ProgressInterval: sec.Key("ProgressInterval").MustDuration(200 * time.Millisecond),
		FluidPresetFile:  file.Section("fluids").Key("PresetFile").MustString(""),
	}
	log.WithFields(log.Fields{
		"Addr":             opts.Addr,
		"HistorySize":      opts.HistorySize,
		"SweepWorkers":     opts.SweepWorkers,
		"ProgressInterval": opts.ProgressInterval,
		"FluidPresetFile":  opts.FluidPresetFile,
	}).Info("读取服务配置")
	return opts, nil
}
