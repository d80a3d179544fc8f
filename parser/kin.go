package parser

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"

	"github.com/erraggy/oasproto/oaserrors"
)

// upgradeSwagger converts a decoded Swagger 2.0 mapping to an OpenAPI 3
// document. The raw mapping is re-encoded as JSON so kin-openapi can apply
// its own unmarshalers.
func upgradeSwagger(raw map[string]any) (*Document, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, &oaserrors.ConversionError{SourceVersion: "2.0", TargetVersion: "3.0", Message: "re-encoding source", Cause: err}
	}

	var v2 openapi2.T
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, &oaserrors.ConversionError{SourceVersion: "2.0", TargetVersion: "3.0", Message: "decoding swagger document", Cause: err}
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, &oaserrors.ConversionError{SourceVersion: "2.0", TargetVersion: "3.0", Message: "converting to openapi 3", Cause: err}
	}

	return FromKin(v3)
}

// FromKin converts a kin-openapi document into a Document. Callers that
// already load specifications through kin-openapi can hand the result
// straight to the rewriter.
func FromKin(t *openapi3.T) (*Document, error) {
	if t == nil {
		return nil, fmt.Errorf("parser: nil kin-openapi document")
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, &oaserrors.ConversionError{SourceVersion: t.OpenAPI, TargetVersion: t.OpenAPI, Message: "encoding kin-openapi document", Cause: err}
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &oaserrors.ConversionError{SourceVersion: t.OpenAPI, TargetVersion: t.OpenAPI, Message: "decoding kin-openapi document", Cause: err}
	}
	return decodeDocument(raw), nil
}
