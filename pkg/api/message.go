package api

import "encoding/json"

// Типы сообщений между устройствами
const (
	// MessageTypeState полная замена документа на принимающей стороне.
	// Документ всегда передается целиком, никогда как diff.
	MessageTypeState = "state"
)

// Message представляет конверт сообщения, передаваемого по установленному
// соединению между устройствами.
type Message struct {
	Type  string          `json:"type"`            // Type тип сообщения
	State json.RawMessage `json:"state,omitempty"` // State сериализованный документ (для MessageTypeState)
}
