package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/expand"
	"github.com/mv/gridweaver/internal/fragments"
	"github.com/zclconf/go-cty/cty"
)

type xmlDocument struct {
	XMLName   xml.Name     `xml:"graph"`
	Tiles     int          `xml:"tiles,attr"`
	Types     xmlTypes     `xml:"types"`
	Instances xmlInstances `xml:"instances"`
}

type xmlTypes struct {
	Devices  []xmlDeviceType  `xml:"deviceType"`
	Messages []xmlMessageType `xml:"messageType"`
}

type xmlDeviceType struct {
	ID          string     `xml:"id,attr"`
	Instancing  string     `xml:"instancing,attr"`
	Properties  []xmlField `xml:"property"`
	State       []xmlField `xml:"state"`
	SharedCode  *xmlCode   `xml:"sharedCode"`
	ReadyToSend *xmlCode   `xml:"readyToSend"`
	OnIdle      *xmlCode   `xml:"onIdle"`
	InputPins   []xmlPin   `xml:"inputPin"`
	OutputPins  []xmlPin   `xml:"outputPin"`
}

type xmlMessageType struct {
	ID     string     `xml:"id,attr"`
	Fields []xmlField `xml:"field"`
}

// xmlField carries the rendered field declaration: name:type[=default] for
// scalars, name:type[N] for arrays.
type xmlField struct {
	Decl string `xml:"decl,attr"`
}

type xmlCode struct {
	Text string `xml:",cdata"`
}

type xmlPin struct {
	Message string   `xml:"message,attr"`
	Name    string   `xml:"name,attr"`
	Handler *xmlCode `xml:"handler"`
}

type xmlInstances struct {
	Devices []xmlDevice `xml:"device"`
	Edges   []xmlEdge   `xml:"edge"`
}

type xmlDevice struct {
	ID   string `xml:"id,attr"`
	Type string `xml:"type,attr"`
}

type xmlEdge struct {
	Message string `xml:"message,attr"`
	From    string `xml:"from,attr"`
	To      string `xml:"to,attr"`
}

// WriteXML serializes the expanded graph to w, embedding any behavioral
// fragments the lookup resolves. A nil lookup omits all fragments.
func WriteXML(w io.Writer, g *expand.Graph, frags fragments.Lookup) error {
	if frags == nil {
		frags = fragments.None
	}

	doc := xmlDocument{Tiles: g.Tiles}
	for _, dev := range g.Schema.Devices {
		doc.Types.Devices = append(doc.Types.Devices, deviceElement(g, dev, frags))
	}
	for _, msg := range g.Schema.Messages {
		doc.Types.Messages = append(doc.Types.Messages, xmlMessageType{
			ID:     msg.ID,
			Fields: fieldElements(msg.Fields),
		})
	}
	for _, inst := range g.Instances {
		doc.Instances.Devices = append(doc.Instances.Devices, xmlDevice{
			ID:   inst.ID(),
			Type: inst.Device,
		})
	}
	for _, edge := range g.Edges {
		doc.Instances.Edges = append(doc.Instances.Edges, xmlEdge{
			Message: edge.Message,
			From:    edge.FromEndpoint(),
			To:      edge.ToEndpoint(),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode graph description: %w", err)
	}
	// Encode does not emit a trailing newline.
	_, err := io.WriteString(w, "\n")
	return err
}

// deviceElement renders one device type with its fields, device-level code
// fragments and the pins implied by message eligibility.
func deviceElement(g *expand.Graph, dev *config.DeviceType, frags fragments.Lookup) xmlDeviceType {
	el := xmlDeviceType{
		ID:          dev.ID,
		Instancing:  dev.Instancing.String(),
		Properties:  fieldElements(dev.Properties),
		State:       fieldElements(dev.State),
		SharedCode:  codeElement(frags, fragments.SharedID(dev.ID)),
		ReadyToSend: codeElement(frags, fragments.ReadyToSendID(dev.ID)),
		OnIdle:      codeElement(frags, fragments.IdleID(dev.ID)),
	}
	for _, msg := range g.Schema.Messages {
		for _, src := range msg.Sources {
			if src == dev.ID {
				el.OutputPins = append(el.OutputPins, xmlPin{
					Message: msg.ID,
					Name:    expand.OutputPin(msg.ID),
					Handler: codeElement(frags, fragments.SendID(dev.ID, msg.ID)),
				})
			}
		}
		for _, dst := range msg.Destinations {
			if dst == dev.ID {
				el.InputPins = append(el.InputPins, xmlPin{
					Message: msg.ID,
					Name:    expand.InputPin(msg.ID),
					Handler: codeElement(frags, fragments.ReceiveID(dev.ID, msg.ID)),
				})
			}
		}
	}
	return el
}

func codeElement(frags fragments.Lookup, id string) *xmlCode {
	if text, ok := frags.Fragment(id); ok {
		return &xmlCode{Text: text}
	}
	return nil
}

func fieldElements(fields []config.Field) []xmlField {
	out := make([]xmlField, 0, len(fields))
	for _, f := range fields {
		out = append(out, xmlField{Decl: FieldDecl(f)})
	}
	return out
}

// FieldDecl renders a field declaration: "name:type" for plain scalars,
// "name:type=default" when a default literal is present and "name:type[N]"
// for fixed-size arrays.
func FieldDecl(f config.Field) string {
	if f.Length > 1 {
		return fmt.Sprintf("%s:%s[%d]", f.Name, f.Type, f.Length)
	}
	if f.Default != nil {
		return fmt.Sprintf("%s:%s=%s", f.Name, f.Type, literal(*f.Default))
	}
	return f.Name + ":" + f.Type
}

// literal formats a cty default value as a target-language literal.
func literal(v cty.Value) string {
	switch {
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case v.Type() == cty.String:
		return v.AsString()
	case v.Type() == cty.Bool:
		return strconv.FormatBool(v.True())
	}
	return v.GoString()
}
