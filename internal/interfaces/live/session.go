package live

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
)

// Tipos de mensaje del cliente.
const (
	MsgSet   = "set"   // reemplaza el texto de un campo
	MsgEdit  = "edit"  // aplica una edición de teclado
	MsgReset = "reset" // vacía el formulario
	MsgState = "state" // solo pide el estado actual
)

// Tipos de mensaje del servidor.
const (
	ReplyState = "state"
	ReplyError = "error"
)

// Message mensaje del cliente. En edit, Edit.Dest se ignora: manda el texto del servidor.
type Message struct {
	Type  string             `json:"type"`
	Field calculator.Field   `json:"field,omitempty"`
	Text  string             `json:"text,omitempty"`
	Edit  *decimalinput.Edit `json:"edit,omitempty"`
}

// Reply estado completo del formulario tras cada mensaje.
type Reply struct {
	Type     string              `json:"type"`
	Field    calculator.Field    `json:"field,omitempty"`
	Accepted *bool               `json:"accepted,omitempty"`
	Error    string              `json:"error,omitempty"`
	Settings calculator.Settings `json:"settings"`
	Values   calculator.Values   `json:"values"`
	Result   averaging.Result    `json:"result"`
	View     calculator.View     `json:"view"`
}

// session estado de una conexión: un formulario propio.
type session struct {
	form *calculator.Form
}

func newSession(s calculator.Settings) *session {
	return &session{form: calculator.NewForm(s)}
}

// handle aplica un mensaje crudo y devuelve la respuesta. Nunca cierra la sesión:
// los mensajes inválidos responden con Type=error y el estado sin cambios.
func (s *session) handle(raw []byte) (Reply, Message) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return s.reply(ReplyError, "", nil, fmt.Errorf("mensaje inválido: %w", err)), msg
	}

	var (
		accepted bool
		err      error
	)
	switch msg.Type {
	case MsgSet:
		_, accepted, err = s.form.SetText(msg.Field, msg.Text)
	case MsgEdit:
		if msg.Edit == nil {
			return s.reply(ReplyError, msg.Field, nil, fmt.Errorf("edit requerido")), msg
		}
		_, accepted, err = s.form.ApplyEdit(msg.Field, *msg.Edit)
	case MsgReset:
		s.form.Reset()
		return s.reply(ReplyState, "", nil, nil), msg
	case MsgState:
		return s.reply(ReplyState, "", nil, nil), msg
	default:
		return s.reply(ReplyError, "", nil, fmt.Errorf("tipo de mensaje desconocido: %q", msg.Type)), msg
	}
	if err != nil {
		return s.reply(ReplyError, msg.Field, nil, err), msg
	}
	return s.reply(ReplyState, msg.Field, &accepted, nil), msg
}

func (s *session) reply(kind string, field calculator.Field, accepted *bool, err error) Reply {
	r := Reply{
		Type:     kind,
		Field:    field,
		Accepted: accepted,
		Settings: s.form.Settings(),
		Values:   s.form.Values(),
		Result:   s.form.Result(),
		View:     s.form.View(),
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
