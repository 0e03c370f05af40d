package fakebookstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/contract"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/servicedef"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Request body schemas, by component name in the built-in API description.
const (
	signupSchema = "UserSignup"
	loginSchema  = "UserLogin"
	bookSchema   = "Book"
)

var bodySchemas = mustLoadBodySchemas(signupSchema, loginSchema, bookSchema)

func mustLoadBodySchemas(names ...string) map[string]*openapi3.Schema {
	v, err := contract.Load()
	if err != nil {
		panic(err)
	}
	ret := make(map[string]*openapi3.Schema, len(names))
	for _, name := range names {
		ref := v.Doc().Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			panic("API description has no schema " + name)
		}
		ret[name] = ref.Value
	}
	return ret
}

func loc(parts ...interface{}) []ldvalue.Value {
	ret := make([]ldvalue.Value, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			ret = append(ret, ldvalue.String(v))
		case int:
			ret = append(ret, ldvalue.Int(v))
		}
	}
	return ret
}

// decodeBody validates the request body against the named schema and decodes it into target. On
// failure it writes a 422 response listing every problem found, and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, schemaName string, target interface{}) bool {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		writeValidationErrors(w, []servicedef.ValidationItem{{
			Loc: loc("body"), Msg: "field required", Type: "value_error.missing",
		}})
		return false
	}

	var object map[string]interface{}
	if err := json.Unmarshal(data, &object); err != nil {
		item := servicedef.ValidationItem{Loc: loc("body"), Msg: "value is not a valid dict", Type: "type_error.dict"}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			item = servicedef.ValidationItem{
				Loc:  loc("body", int(syntaxErr.Offset)),
				Msg:  "Expecting value",
				Type: "value_error.jsondecode",
			}
		}
		writeValidationErrors(w, []servicedef.ValidationItem{item})
		return false
	}

	err = bodySchemas[schemaName].VisitJSON(object, openapi3.MultiErrors(), openapi3.VisitAsRequest())
	if problems := validationItems(err); len(problems) > 0 {
		writeValidationErrors(w, problems)
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		writeValidationErrors(w, []servicedef.ValidationItem{{Loc: loc("body"), Msg: err.Error(), Type: "value_error"}})
		return false
	}
	return true
}

// validationItems translates schema errors into the service's 422 items. Missing and null
// fields are both reported as missing.
func validationItems(err error) []servicedef.ValidationItem {
	if err == nil {
		return nil
	}
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var ret []servicedef.ValidationItem
		for _, e := range multi {
			ret = append(ret, validationItems(e)...)
		}
		return ret
	}
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return []servicedef.ValidationItem{{Loc: loc("body"), Msg: err.Error(), Type: "value_error"}}
	}

	where := []interface{}{"body"}
	for _, p := range schemaErr.JSONPointer() {
		where = append(where, p)
	}
	switch schemaErr.SchemaField {
	case "required", "nullable":
		return []servicedef.ValidationItem{{Loc: loc(where...), Msg: "field required", Type: "value_error.missing"}}
	case "type":
		return []servicedef.ValidationItem{typeError(schemaErr.Schema, loc(where...))}
	}
	return []servicedef.ValidationItem{{Loc: loc(where...), Msg: schemaErr.Reason, Type: "value_error"}}
}

func typeError(schema *openapi3.Schema, at []ldvalue.Value) servicedef.ValidationItem {
	switch {
	case schema.Type.Is(openapi3.TypeInteger):
		return servicedef.ValidationItem{Loc: at, Msg: "value is not a valid integer", Type: "type_error.integer"}
	case schema.Type.Is(openapi3.TypeNumber):
		return servicedef.ValidationItem{Loc: at, Msg: "value is not a valid float", Type: "type_error.float"}
	}
	return servicedef.ValidationItem{Loc: at, Msg: "str type expected", Type: "type_error.str"}
}

func writeValidationErrors(w http.ResponseWriter, items []servicedef.ValidationItem) {
	writeJSON(w, http.StatusUnprocessableEntity, servicedef.ValidationError{Detail: items})
}
