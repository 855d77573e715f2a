package server

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"flowcalc/calculator"
	"flowcalc/deque"
	"flowcalc/model"
	"flowcalc/progress"
)

// 请求消息类型
const (
	msgCalculate = "calculate"
	msgSweep     = "sweep"
	msgSimulate  = "simulate"
	msgStop      = "stop"
	msgHistory   = "history"
	msgFluids    = "fluids"
)

// 回复消息类型
const (
	replyResult   = "result"
	replySweep    = "sweepResult"
	replyProgress = "progress"
	replyStopped  = "stopped"
	replyHistory  = "history"
	replyFluids   = "fluids"
	replyError    = "error"
)

// Hub 对应一个 websocket 连接，保存该会话的历史结果
type Hub struct {
	svc  *Service
	conn *websocket.Conn

	progressInterval time.Duration

	mu       sync.Mutex
	history  deque.Deque[model.HistoryEntry]
	reporter *progress.Reporter

	// request
	msg chan model.Msg
	// response
	send chan model.Msg
	done chan struct{}
}

func NewHub(svc *Service, historySize int, progressInterval time.Duration) *Hub {
	return &Hub{
		svc:              svc,
		progressInterval: progressInterval,
		history:          deque.NewListDeque[model.HistoryEntry](historySize),
		msg:              make(chan model.Msg, 10),
		send:             make(chan model.Msg, 16),
		done:             make(chan struct{}),
	}
}

func (h *Hub) close() {
	h.mu.Lock()
	if h.reporter != nil {
		h.reporter.Stop()
	}
	h.mu.Unlock()
	close(h.done)
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.send:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Error("写入 websocket 失败")
			}
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			h.handle(msg)
		}
	}
}

func (h *Hub) handle(msg model.Msg) {
	switch msg.Type {
	case msgCalculate:
		var req model.CalculateRequest
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			h.replyErr(badRequest(err))
			return
		}
		entry, err := h.svc.Calculate(req)
		if err != nil {
			h.replyErr(err)
			return
		}
		h.remember(entry)
		h.replyJSON(replyResult, response(entry))
	case msgSweep:
		var req model.SweepRequest
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			h.replyErr(badRequest(err))
			return
		}
		points, err := h.svc.Sweep(req)
		if err != nil {
			h.replyErr(err)
			return
		}
		h.replyJSON(replySweep, points)
	case msgSimulate:
		var req model.CalculateRequest
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			h.replyErr(badRequest(err))
			return
		}
		h.simulate(req)
	case msgStop:
		h.mu.Lock()
		r := h.reporter
		h.mu.Unlock()
		if r == nil {
			h.reply(model.Msg{Type: replyStopped, Content: "stopped"})
			return
		}
		r.Stop()
	case msgHistory:
		h.mu.Lock()
		entries := h.history.Slice()
		h.mu.Unlock()
		h.replyJSON(replyHistory, entries)
	case msgFluids:
		h.replyJSON(replyFluids, h.svc.Fluids())
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		h.replyErr(badRequest(errors.New("no such type: " + msg.Type)))
	}
}

// 先完成计算，再按进度展示推送，展示结束后发送结果；中途停止则不发送结果
func (h *Hub) simulate(req model.CalculateRequest) {
	entry, err := h.svc.Calculate(req)
	if err != nil {
		h.replyErr(err)
		return
	}

	h.mu.Lock()
	if h.reporter != nil {
		h.reporter.Stop()
	}
	r := progress.NewReporter(h.progressInterval, time.Now().UnixNano())
	h.reporter = r
	h.mu.Unlock()

	stages := r.Start()
	go func() {
		finished := false
		for s := range stages {
			h.replyJSON(replyProgress, s)
			finished = s.Name == progress.StageDone
		}
		h.mu.Lock()
		if h.reporter == r {
			h.reporter = nil
		}
		h.mu.Unlock()
		if !finished {
			h.reply(model.Msg{Type: replyStopped, Content: "stopped"})
			return
		}
		h.remember(entry)
		h.replyJSON(replyResult, response(entry))
	}()
}

func (h *Hub) remember(entry model.HistoryEntry) {
	h.mu.Lock()
	h.history.AddFirst(entry)
	size := h.history.Size()
	h.mu.Unlock()
	log.WithFields(log.Fields{"id": entry.ID, "history": size}).Debug("记录计算结果")
}

func (h *Hub) reply(msg model.Msg) {
	select {
	case h.send <- msg:
	case <-h.done:
	}
}

func (h *Hub) replyJSON(typ string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("序列化回复失败")
		h.replyErr(err)
		return
	}
	h.reply(model.Msg{Type: typ, Content: string(data)})
}

func (h *Hub) replyErr(err error) {
	data, _ := json.Marshal(errorReply(err))
	h.reply(model.Msg{Type: replyError, Content: string(data)})
}

func response(entry model.HistoryEntry) model.CalculateResponse {
	return model.CalculateResponse{ID: entry.ID, Result: entry.Result, Display: entry.Display}
}

func badRequest(err error) error {
	return &calculator.EngineError{Kind: calculator.ErrValidation, Msg: err.Error()}
}

func errorReply(err error) model.ErrorReply {
	return model.ErrorReply{Kind: calculator.ErrorKind(err), Message: err.Error()}
}
