package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"flowcalc/calculator"
	"flowcalc/fluid"
	"flowcalc/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	configPath := flag.String("config", "conf/config.ini", "配置文件路径")
	flag.Parse()

	cfg, err := calculator.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("读取关联式参数失败")
	}
	opts, err := server.LoadOptions(*configPath)
	if err != nil {
		log.WithError(err).Fatal("读取服务配置失败")
	}
	fluids, err := fluid.Load(opts.FluidPresetFile)
	if err != nil {
		log.WithError(err).Fatal("读取流体物性失败")
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	svc := server.NewService(cfg, fluids, opts.SweepWorkers)
	s := server.NewServer(opts, upgrader, svc)
	if err := s.Serve(); err != nil {
		log.WithError(err).Fatal("ListenAndServe")
	}
}
