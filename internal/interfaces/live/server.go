// Package live sirve el calculador por WebSocket: cada conexión tiene su propio formulario
// y recibe el estado completo (valores, resultado y vista formateada) tras cada mensaje.
package live

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/pkg/logger"
)

// Metrics lo implementa *metrics.Registry.
type Metrics interface {
	SessionOpened()
	SessionClosed()
	MessageHandled(kind string)
	InputFiltered(mode string, accepted bool)
}

type nopMetrics struct{}

func (nopMetrics) SessionOpened()             {}
func (nopMetrics) SessionClosed()             {}
func (nopMetrics) MessageHandled(string)      {}
func (nopMetrics) InputFiltered(string, bool) {}

// Server maneja las conexiones WebSocket del calculador.
type Server struct {
	settings *calculator.SettingsStore
	metrics  Metrics
	log      *logger.Logger
	upgrader websocket.Upgrader

	ReadTimeout  time.Duration
	PingInterval time.Duration
	WriteTimeout time.Duration

	// AllowedOrigins orígenes de navegador aceptados además del mismo host; "*" acepta cualquiera.
	// Las peticiones sin cabecera Origin (clientes que no son navegador) siempre pasan.
	AllowedOrigins []string

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewServer construye el servidor. metrics y log pueden ser nil.
func NewServer(settings *calculator.SettingsStore, metrics Metrics, log *logger.Logger) *Server {
	if settings == nil {
		settings = calculator.NewSettingsStore(calculator.DefaultSettings())
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		settings:     settings,
		metrics:      metrics,
		log:          log.Component("live"),
		ReadTimeout:  60 * time.Second,
		PingInterval: 30 * time.Second,
		WriteTimeout: 10 * time.Second,
		conns:        make(map[*websocket.Conn]struct{}),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// checkOrigin acepta sin Origin, mismo host o un origen de AllowedOrigins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range s.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}
	s.log.Warn().Str("origin", origin).Msg("origen no permitido")
	return false
}

// Mux rutas del listener en vivo: /ws/calculator, /metrics y /health.
func (s *Server) Mux(metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws/calculator", s)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return mux
}

// ServeHTTP hace el upgrade y atiende la sesión hasta que el cliente cierra.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("upgrade websocket")
		return
	}
	s.track(conn)
	s.metrics.SessionOpened()
	defer func() {
		s.untrack(conn)
		s.metrics.SessionClosed()
		_ = conn.Close()
	}()

	var writeMu sync.Mutex
	write := func(v any) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(s.WriteTimeout))
		return conn.WriteJSON(v)
	}

	done := make(chan struct{})
	defer close(done)
	if s.PingInterval > 0 {
		go s.pingLoop(conn, &writeMu, done)
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	})

	sess := newSession(s.settings.Get())
	if err := write(sess.reply(ReplyState, "", nil, nil)); err != nil {
		return
	}

	log := s.log.With().Str("remote", r.RemoteAddr).Logger()
	log.Debug().Msg("sesión abierta")
	for {
		_ = conn.SetReadDeadline(time.Now().Add(s.ReadTimeout))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("lectura websocket")
			}
			return
		}

		// Settings recargados en caliente se aplican al siguiente mensaje.
		sess.form.Configure(s.settings.Get())
		reply, msg := sess.handle(raw)
		s.metrics.MessageHandled(msg.Type)
		if reply.Accepted != nil {
			s.metrics.InputFiltered(sess.form.Settings().InputMode, *reply.Accepted)
		}
		if reply.Type == ReplyError {
			log.Debug().Str("error", reply.Error).Msg("mensaje rechazado")
		}
		if err := write(reply); err != nil {
			log.Warn().Err(err).Msg("escritura websocket")
			return
		}
	}
}

func (s *Server) pingLoop(conn *websocket.Conn, writeMu *sync.Mutex, done <-chan struct{}) {
	ticker := time.NewTicker(s.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.WriteTimeout))
			writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// Close cierra todas las sesiones abiertas (las conexiones secuestradas no las cierra http.Server.Shutdown).
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.conns {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "apagando"),
			time.Now().Add(time.Second))
		_ = c.Close()
	}
}

func (s *Server) track(c *websocket.Conn) {
	s.mu.Lock()
	s.conns[c] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(c *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
}
