// Package assertions contains named checks for test code. Every check either passes, in which
// case it writes a trace line if it was given a label, or fails the test immediately through
// FailNow. There is no soft-assertion mode: the first failure ends the test.
package assertions

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/logging"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TestingT is the subset of *testing.T that the checks need. framework.Context and the
// suite's T both implement it.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// Tracer is implemented by test scopes that want to receive trace lines themselves. If the
// TestingT passed to a check does not implement it, trace lines go to the process-wide sink.
type Tracer interface {
	Trace(format string, args ...interface{})
}

type tHelper interface {
	Helper()
}

type jsonBody interface {
	JSON() ldvalue.Value
}

type headerSource interface {
	Header(name string) string
}

func helper(t TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

func trace(t TestingT, label string, format string, args ...interface{}) {
	if label == "" {
		return
	}
	message := "✓ " + label + ": " + fmt.Sprintf(format, args...)
	if tr, ok := t.(Tracer); ok {
		tr.Trace("%s", message)
		return
	}
	logging.Trace("%s", message)
}

func check(t TestingT, ok bool) {
	if !ok {
		t.FailNow()
	}
}

// Equals fails unless actual and expected have the same type and value. Equals(t, 1, "1", ...)
// fails.
func Equals(t TestingT, actual, expected interface{}, label string) {
	helper(t)
	check(t, assert.Equal(t, expected, actual, label))
	trace(t, label, "%v equals %v", actual, expected)
}

func NotEquals(t TestingT, actual, expected interface{}, label string) {
	helper(t)
	check(t, assert.NotEqual(t, expected, actual, label))
	trace(t, label, "%v not equals %v", actual, expected)
}

func True(t TestingT, condition bool, label string) {
	helper(t)
	check(t, assert.True(t, condition, label))
	trace(t, label, "condition is true")
}

func False(t TestingT, condition bool, label string) {
	helper(t)
	check(t, assert.False(t, condition, label))
	trace(t, label, "condition is false")
}

// NotNull fails if value is null. Nil pointers, maps, slices and interfaces, JSON null values,
// and undefined optional values all count as null.
func NotNull(t TestingT, value interface{}, label string) {
	helper(t)
	if isNull(value) {
		assert.Fail(t, "expected a non-null value", label)
		t.FailNow()
	}
	trace(t, label, "value is not null")
}

// Null is the inverse of NotNull.
func Null(t TestingT, value interface{}, label string) {
	helper(t)
	if !isNull(value) {
		assert.Fail(t, fmt.Sprintf("expected null, got: %v", value), label)
		t.FailNow()
	}
	trace(t, label, "value is null")
}

// ErrorHasDetail fails unless body is a JSON object with a non-null "detail" member. What the
// detail says is not checked, since error messages differ between validation errors and
// domain errors.
func ErrorHasDetail(t TestingT, body interface{}, label string) {
	helper(t)
	v := toValue(body)
	if v.Type() != ldvalue.ObjectType {
		assert.Fail(t, fmt.Sprintf("expected an error object with a detail field, got: %s", v.JSONString()), label)
		t.FailNow()
	}
	if v.GetByKey("detail").IsNull() {
		assert.Fail(t, fmt.Sprintf("error object has no detail field: %s", v.JSONString()), label)
		t.FailNow()
	}
	trace(t, label, "error response contains detail")
}

// ObjectContainsSubstring fails unless some key of the JSON object body, or some value of it
// rendered as a string, contains item. Non-string values are rendered as JSON.
func ObjectContainsSubstring(t TestingT, body interface{}, item string, label string) {
	helper(t)
	v := toValue(body)
	if v.Type() != ldvalue.ObjectType {
		assert.Fail(t, fmt.Sprintf("expected a JSON object, got: %s", v.JSONString()), label)
		t.FailNow()
	}
	for _, k := range v.Keys() {
		if strings.Contains(k, item) || strings.Contains(stringify(v.GetByKey(k)), item) {
			trace(t, label, "container contains %s", item)
			return
		}
	}
	assert.Fail(t, fmt.Sprintf("no key or value of %s contains %q", v.JSONString(), item), label)
	t.FailNow()
}

// SequenceContains fails unless container literally contains item: a substring of a string,
// an element of a slice, array or JSON array, or a key of a map.
func SequenceContains(t TestingT, container, item interface{}, label string) {
	helper(t)
	if v, ok := asValue(container); ok {
		check(t, assert.True(t, valueContains(v, item), "%s: %s does not contain %v", label, v.JSONString(), item))
	} else {
		check(t, assert.Contains(t, container, item, label))
	}
	trace(t, label, "container contains %v", item)
}

// NotContains is the negation of SequenceContains.
func NotContains(t TestingT, container, item interface{}, label string) {
	helper(t)
	if v, ok := asValue(container); ok {
		check(t, assert.False(t, valueContains(v, item), "%s: %s should not contain %v", label, v.JSONString(), item))
	} else {
		check(t, assert.NotContains(t, container, item, label))
	}
	trace(t, label, "container does not contain %v", item)
}

// HeaderEquals fails unless the named response header has exactly the expected value.
func HeaderEquals(t TestingT, resp headerSource, name, expected string, label string) {
	helper(t)
	Equals(t, resp.Header(name), expected, label)
}

func isNull(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case ldvalue.Value:
		return v.IsNull()
	case ldvalue.OptionalString:
		return !v.IsDefined()
	case ldvalue.OptionalInt:
		return !v.IsDefined()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func asValue(x interface{}) (ldvalue.Value, bool) {
	switch v := x.(type) {
	case ldvalue.Value:
		return v, true
	case jsonBody:
		return v.JSON(), true
	}
	return ldvalue.Null(), false
}

func toValue(x interface{}) ldvalue.Value {
	if v, ok := asValue(x); ok {
		return v
	}
	switch v := x.(type) {
	case []byte:
		return ldvalue.Parse(v)
	case nil:
		return ldvalue.Null()
	}
	data, err := json.Marshal(x)
	if err != nil {
		return ldvalue.Null()
	}
	return ldvalue.Parse(data)
}

func stringify(v ldvalue.Value) string {
	if v.Type() == ldvalue.StringType {
		return v.StringValue()
	}
	return v.JSONString()
}

func valueContains(container ldvalue.Value, item interface{}) bool {
	switch container.Type() {
	case ldvalue.StringType:
		s, ok := item.(string)
		return ok && strings.Contains(container.StringValue(), s)
	case ldvalue.ArrayType:
		want := toValue(item)
		for i := 0; i < container.Count(); i++ {
			if container.GetByIndex(i).Equal(want) {
				return true
			}
		}
	case ldvalue.ObjectType:
		s, ok := item.(string)
		if !ok {
			return false
		}
		for _, k := range container.Keys() {
			if k == s {
				return true
			}
		}
	}
	return false
}
