// Package templates provides the wire types and gRPC bindings of the
// templates.Templates service defined in templates.proto.
package templates

import (
	"google.golang.org/protobuf/encoding/protowire"
)

type Empty struct{}

func (m *Empty) appendWire(b []byte) []byte { return b }

func (m *Empty) unmarshalWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return 0, nil
	})
}

// IdStruct carries a single generated or requested identifier.
type IdStruct struct {
	Id int64 `json:"id"`
}

func (m *IdStruct) GetId() int64 {
	if m == nil {
		return 0
	}
	return m.Id
}

func (m *IdStruct) appendWire(b []byte) []byte {
	return appendInt64(b, 1, m.Id)
}

func (m *IdStruct) unmarshalWire(b []byte) error {
	*m = IdStruct{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeInt64(typ, v, &m.Id)
		}
		return 0, nil
	})
}

type CreateTemplateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (m *CreateTemplateRequest) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *CreateTemplateRequest) GetDescription() string {
	if m == nil {
		return ""
	}
	return m.Description
}

func (m *CreateTemplateRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	return appendString(b, 2, m.Description)
}

func (m *CreateTemplateRequest) unmarshalWire(b []byte) error {
	*m = CreateTemplateRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, v, &m.Name)
		case 2:
			return consumeString(typ, v, &m.Description)
		}
		return 0, nil
	})
}

type CreateFeatureRequest struct {
	Name string `json:"name"`
}

func (m *CreateFeatureRequest) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *CreateFeatureRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Name)
}

func (m *CreateFeatureRequest) unmarshalWire(b []byte) error {
	*m = CreateFeatureRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, v, &m.Name)
		}
		return 0, nil
	})
}

// LinkRequest addresses one feature/template association.
type LinkRequest struct {
	FeatureId  int64 `json:"feature_id"`
	TemplateId int64 `json:"template_id"`
}

func (m *LinkRequest) GetFeatureId() int64 {
	if m == nil {
		return 0
	}
	return m.FeatureId
}

func (m *LinkRequest) GetTemplateId() int64 {
	if m == nil {
		return 0
	}
	return m.TemplateId
}

func (m *LinkRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.FeatureId)
	return appendInt64(b, 2, m.TemplateId)
}

func (m *LinkRequest) unmarshalWire(b []byte) error {
	*m = LinkRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &m.FeatureId)
		case 2:
			return consumeInt64(typ, v, &m.TemplateId)
		}
		return 0, nil
	})
}

type TemplateStruct struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (m *TemplateStruct) GetId() int64 {
	if m == nil {
		return 0
	}
	return m.Id
}

func (m *TemplateStruct) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *TemplateStruct) GetDescription() string {
	if m == nil {
		return ""
	}
	return m.Description
}

func (m *TemplateStruct) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	return appendString(b, 3, m.Description)
}

func (m *TemplateStruct) unmarshalWire(b []byte) error {
	*m = TemplateStruct{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &m.Id)
		case 2:
			return consumeString(typ, v, &m.Name)
		case 3:
			return consumeString(typ, v, &m.Description)
		}
		return 0, nil
	})
}

type TemplatesList struct {
	Items []*TemplateStruct `json:"items"`
}

func (m *TemplatesList) GetItems() []*TemplateStruct {
	if m == nil {
		return nil
	}
	return m.Items
}

func (m *TemplatesList) appendWire(b []byte) []byte {
	for _, item := range m.Items {
		if item == nil {
			item = &TemplateStruct{}
		}
		b = appendMessage(b, 1, item)
	}
	return b
}

func (m *TemplatesList) unmarshalWire(b []byte) error {
	*m = TemplatesList{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		item := &TemplateStruct{}
		n, err := consumeMessage(typ, v, item)
		if n > 0 && err == nil {
			m.Items = append(m.Items, item)
		}
		return n, err
	})
}

type FeatureStruct struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

func (m *FeatureStruct) GetId() int64 {
	if m == nil {
		return 0
	}
	return m.Id
}

func (m *FeatureStruct) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *FeatureStruct) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	return appendString(b, 2, m.Name)
}

func (m *FeatureStruct) unmarshalWire(b []byte) error {
	*m = FeatureStruct{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &m.Id)
		case 2:
			return consumeString(typ, v, &m.Name)
		}
		return 0, nil
	})
}

type FeaturesList struct {
	Items []*FeatureStruct `json:"items"`
}

func (m *FeaturesList) GetItems() []*FeatureStruct {
	if m == nil {
		return nil
	}
	return m.Items
}

func (m *FeaturesList) appendWire(b []byte) []byte {
	for _, item := range m.Items {
		if item == nil {
			item = &FeatureStruct{}
		}
		b = appendMessage(b, 1, item)
	}
	return b
}

func (m *FeaturesList) unmarshalWire(b []byte) error {
	*m = FeaturesList{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		item := &FeatureStruct{}
		n, err := consumeMessage(typ, v, item)
		if n > 0 && err == nil {
			m.Items = append(m.Items, item)
		}
		return n, err
	})
}
