package message

import (
	"bytes"
	"fmt"
	"sort"
)

// Message defines the interface for service messages.
type Message interface {
	Get(field string) []byte
	Set(field string, val []byte)
	CommandCode() string
	Trace() string
}

// BaseMessage implements Message and holds command fields.
type BaseMessage struct {
	cmdCode     string
	description string
	Fields      map[string][]byte
}

// NewBaseMessage creates a new BaseMessage with the given code and description.
func NewBaseMessage(cmdCode, description string) *BaseMessage {
	return &BaseMessage{cmdCode: cmdCode, description: description, Fields: make(map[string][]byte)}
}

func (m *BaseMessage) Get(field string) []byte {
	return m.Fields[field]
}

func (m *BaseMessage) Set(field string, val []byte) {
	m.Fields[field] = val
}

func (m *BaseMessage) CommandCode() string {
	return m.cmdCode
}

// Description returns the human-readable command name.
func (m *BaseMessage) Description() string {
	return m.description
}

// Trace lists field names with their lengths. Values are credentials and are not printed.
func (m *BaseMessage) Trace() string {
	names := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Command: %s - %s\n", m.cmdCode, m.description))
	for _, k := range names {
		buf.WriteString(fmt.Sprintf("\t[%s] len=%d\n", k, len(m.Fields[k])))
	}

	return buf.String()
}
