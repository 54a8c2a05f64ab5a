package wsbridge

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/pokercore/internal/bankroll"
	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/equity"
	"github.com/lox/pokercore/internal/luck"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 16
)

// connection wraps one upgraded websocket connection, grounded on the
// teacher's server.Connection read/write pump pair.
type connection struct {
	conn      *websocket.Conn
	send      chan *Message
	logger    *log.Logger
	defaults  *config.Config
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newConnection(conn *websocket.Conn, logger *log.Logger, defaults *config.Config) *connection {
	ctx, cancel := context.WithCancel(context.Background())
	if defaults == nil {
		defaults = config.Default()
	}
	return &connection{
		conn:     conn,
		send:     make(chan *Message, 64),
		logger:   logger.WithPrefix("wsbridge"),
		defaults: defaults,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (c *connection) start() {
	go c.writePump()
	c.readPump()
}

func (c *connection) close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

func (c *connection) readPump() {
	defer func() { _ = c.close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("read error", "error", err)
			}
			return
		}
		c.handleMessage(&msg)
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("write error", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *connection) reply(requestID string, msgType MessageType, data interface{}) {
	msg, err := NewMessage(msgType, requestID, data)
	if err != nil {
		c.logger.Error("marshal reply", "error", err)
		return
	}
	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	}
}

func (c *connection) replyError(requestID, code, message string) {
	c.reply(requestID, MessageTypeError, ErrorResponse{Code: code, Message: message})
}

func (c *connection) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeEquityRequest:
		c.handleEquity(msg)
	case MessageTypeLuckRequest:
		c.handleLuck(msg)
	case MessageTypeBankrollRequest:
		c.handleBankroll(msg)
	default:
		c.replyError(msg.RequestID, "unknown_message_type", "unrecognized request type")
	}
}

func (c *connection) handleEquity(msg *Message) {
	var req EquityRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		c.replyError(msg.RequestID, "invalid_message", "malformed equity request")
		return
	}

	holes := make([][2]card.Card, 0, len(req.Hands))
	for _, h := range req.Hands {
		cards, err := card.ParseAll(h)
		if err != nil || len(cards) != 2 {
			c.replyError(msg.RequestID, "invalid_hand", "each hand must be exactly 2 cards: "+h)
			return
		}
		holes = append(holes, [2]card.Card{cards[0], cards[1]})
	}

	var board []card.Card
	if req.Board != "" {
		parsed, err := card.ParseAll(req.Board)
		if err != nil {
			c.replyError(msg.RequestID, "invalid_board", "malformed board: "+req.Board)
			return
		}
		board = parsed
	}

	result, err := equity.Compute(holes, board, equity.WithMaxWorkers(c.defaults.Equity.MaxWorkers))
	if err != nil {
		c.replyError(msg.RequestID, "compute_failed", err.Error())
		return
	}

	resp := EquityResponse{
		Equities:  make([]float64, result.PlayerCount()),
		NeverLost: make([]bool, result.PlayerCount()),
		Trials:    result.TrialCount(),
	}
	for i := 0; i < result.PlayerCount(); i++ {
		resp.Equities[i] = result.Equity(i)
		resp.NeverLost[i] = result.NeverLost(i)
	}
	c.reply(msg.RequestID, MessageTypeEquityResponse, resp)
}

func (c *connection) handleLuck(msg *Message) {
	var req LuckRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		c.replyError(msg.RequestID, "invalid_message", "malformed luck request")
		return
	}

	scorer := luck.NewScorer()
	for _, s := range req.Samples {
		if err := scorer.Add(s.Equity, s.Outcome); err != nil {
			c.replyError(msg.RequestID, "invalid_sample", err.Error())
			return
		}
	}

	z, ok := scorer.Score()
	if !ok {
		c.reply(msg.RequestID, MessageTypeLuckResponse, LuckResponse{HasScore: false})
		return
	}
	upper, lower, twoSided, _ := scorer.Tails()
	c.reply(msg.RequestID, MessageTypeLuckResponse, LuckResponse{
		HasScore: true,
		Z:        z,
		Upper:    upper,
		Lower:    lower,
		TwoSided: twoSided,
	})
}

func (c *connection) handleBankroll(msg *Message) {
	var req BankrollRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		c.replyError(msg.RequestID, "invalid_message", "malformed bankroll request")
		return
	}

	cfg := bankroll.Config{
		InitialCapital:       req.InitialCapital,
		ReturnSamples:        req.ReturnSamples,
		MaxSteps:             req.MaxSteps,
		ProfitExitMultiplier: req.ProfitExitMultiplier,
		SimulationCount:      req.SimulationCount,
	}
	if cfg.InitialCapital == 0 {
		cfg.InitialCapital = c.defaults.Bankroll.InitialCapital
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = c.defaults.Bankroll.MaxSteps
	}
	if cfg.SimulationCount == 0 {
		cfg.SimulationCount = c.defaults.Bankroll.SimulationCount
	}

	result, err := bankroll.Simulate(cfg, req.Seed, bankroll.WithLogger(c.logger))
	if err != nil {
		c.replyError(msg.RequestID, "simulate_failed", err.Error())
		return
	}

	c.reply(msg.RequestID, MessageTypeBankrollResponse, BankrollResponse{
		SimulationCount:    result.SimulationCount,
		Bankrupt:           result.Bankrupt,
		SurvivedToCap:      result.SurvivedToCap,
		ProfitExited:       result.ProfitExited,
		BankruptcyRate:     result.BankruptcyRate,
		SurvivalRate:       result.SurvivalRate,
		ProfitableRate:     result.ProfitableRate,
		MeanFinalCapital:   result.MeanFinalCapital,
		MedianFinalCapital: result.MedianFinalCapital,
	})
}
