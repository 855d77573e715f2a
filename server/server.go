package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"flowcalc/metrics"
	"flowcalc/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	svc      *Service
	opts     Options
}

func NewServer(opts Options, upgrader websocket.Upgrader, svc *Service) *Server {
	return &Server{
		addr:     opts.Addr,
		upgrader: upgrader,
		svc:      svc,
		opts:     opts,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade 失败")
		return
	}
	defer conn.Close()

	hub := NewHub(s.svc, s.opts.HistorySize, s.opts.ProgressInterval)
	hub.conn = conn
	defer hub.close()
	go hub.handleRequest()
	go hub.handleResponse()

	metrics.SessionOpened()
	defer metrics.SessionClosed()
	log.WithField("remote", r.RemoteAddr).Info("websocket 连接建立")

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("websocket 读取失败")
			}
			log.WithField("remote", r.RemoteAddr).Info("websocket 连接关闭")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.serveWs)
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/flow", s.calculateHandler(model.ModeFlow)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/pipe", s.calculateHandler(model.ModePipe)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sweep", s.sweepHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/fluids", s.fluidsHandler).Methods(http.MethodGet)
	api.HandleFunc("/config", s.configHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())
	return router
}

func (s *Server) Serve() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.WithField("addr", s.addr).Info("服务启动")
	return srv.ListenAndServe()
}
