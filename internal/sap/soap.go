package sap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// SAP web service wire constants. The namespaces and the success literal are
// part of the external contract and must not drift.
const (
	SOAPNamespace = "http://www.w3.org/2003/05/soap-envelope"
	RFCNamespace  = "urn:sap-com:document:sap:rfc:functions"

	// FieldOutput is the single output field SAP functions answer with.
	FieldOutput = "OUTPUT"
	// LoginSuccessful is the literal OUTPUT value meaning authentication
	// passed. Anything else is a failed login.
	LoginSuccessful = "Login Successful"
)

// Param is one named input parameter of an RFC function. Parameters are
// rendered in the order given.
type Param struct {
	Name  string
	Value string
}

// BuildEnvelope constructs the SOAP 1.2 request for one RFC function call:
// an envelope with an empty header and a body holding a single namespaced
// function element whose children are the named parameters.
func BuildEnvelope(function string, params []Param) ([]byte, error) {
	if function == "" {
		return nil, fmt.Errorf("function name is required")
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, `<soap:Envelope xmlns:soap=%q xmlns:n0=%q>`, SOAPNamespace, RFCNamespace)
	buf.WriteString(`<soap:Header></soap:Header><soap:Body>`)
	fmt.Fprintf(&buf, `<n0:%s xmlns:n0=%q>`, function, RFCNamespace)
	for _, p := range params {
		fmt.Fprintf(&buf, "<%s>", p.Name)
		if err := xml.EscapeText(&buf, []byte(p.Value)); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "</%s>", p.Name)
	}
	fmt.Fprintf(&buf, `</n0:%s>`, function)
	buf.WriteString(`</soap:Body></soap:Envelope>`)

	return buf.Bytes(), nil
}

// ParseResponse extracts the output fields of a function response. It walks
// the document namespace-insensitively looking for <function>Response and
// collects its child elements into a field map. A response without that
// element fails closed with a parse error rather than yielding empty fields.
func ParseResponse(function string, body []byte) (map[string]string, error) {
	wanted := function + "Response"

	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, parseError(function, fmt.Errorf("no %s element in SAP response", wanted))
		}
		if err != nil {
			return nil, parseError(function, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local == "Fault" {
			return nil, &Error{Kind: KindUnavailable, Function: function, Err: fmt.Errorf("SOAP fault: %s", faultText(dec))}
		}
		if start.Name.Local != wanted {
			continue
		}

		return collectFields(dec, start)
	}
}

// collectFields reads the immediate children of the response element as
// name/text pairs.
func collectFields(dec *xml.Decoder, parent xml.StartElement) (map[string]string, error) {
	fields := make(map[string]string)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, parseError(parent.Name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := dec.DecodeElement(&value, &t); err != nil {
				return nil, parseError(parent.Name.Local, err)
			}
			fields[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if t.Name.Local == parent.Name.Local {
				return fields, nil
			}
		}
	}
}

func faultText(dec *xml.Decoder) string {
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if t.Name.Local == "Fault" {
				return strings.TrimSpace(text.String())
			}
		}
	}
	return strings.TrimSpace(text.String())
}
