// File: template_test.go
// Title: Template Engine Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package template

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
	"github.com/msto63/formatting/foundation/utils/numberx"
)

func dateTemplate() *Template {
	day := MustNumericInt("dd", numberx.FixedWidthInteger(2), 1, 31)
	month := MustNumericInt("MM", numberx.FixedWidthInteger(2), 1, 12)
	year := MustNumericInt("yyyy", numberx.FixedWidthInteger(4), 0, 9999)
	return New(day, Sep("/"), month, Sep("/"), year)
}

func TestTemplateInverse(t *testing.T) {
	tmpl := dateTemplate()

	r, err := tmpl.Parse("05/12/2025")
	require.NoError(t, err)
	assert.Equal(t, Record{"dd": 5, "MM": 12, "yyyy": 2025}, r)

	s, err := tmpl.Format(r)
	require.NoError(t, err)
	assert.Equal(t, "05/12/2025", s)
}

func TestTemplateParseErrors(t *testing.T) {
	tmpl := dateTemplate()

	tests := []struct {
		input   string
		code    mdwerror.Code
		message string
	}{
		{
			input:   "05/12/2025extra",
			code:    mdwerror.CodeTrailingInput,
			message: "Expected text not consumed by template to be empty. Actual: 'extra'",
		},
		{
			input:   "05-12-2025",
			code:    mdwerror.CodeLiteralMismatch,
			message: "Expected remaining text for separator at position 2 to start with '/'. Actual: '-12-2025'",
		},
		{
			input:   "05/13/2025",
			code:    mdwerror.CodeValueOutOfRange,
			message: "Expected #MM to be between 1 and 12 (included). Actual: 13",
		},
		{
			input:   "05/12/25",
			code:    mdwerror.CodeInvalidLength,
			message: "Expected length of #yyyy to be: 4. Actual: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := tmpl.ToParser()(tt.input)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, tt.message, err.Error())
			assert.True(t, mdwerror.HasCode(err, tt.code))
		})
	}
}

func TestTemplateRepeatedField(t *testing.T) {
	month := MustNumericInt("MM", numberx.FixedWidthInteger(2), 1, 12)
	tmpl := New(month, Sep("|"), month)

	r, err := tmpl.Parse("03|03")
	require.NoError(t, err)
	assert.Equal(t, Record{"MM": 3}, r)

	_, err = tmpl.Parse("03|04")
	require.Error(t, err)
	assert.Equal(t, "#MM is present more than once in template and receives differing values '3' and '4'", err.Error())
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInconsistentValue))

	s, err := tmpl.Format(Record{"MM": 3})
	require.NoError(t, err)
	assert.Equal(t, "03|03", s)
}

func TestTemplateRepeatedDecimal(t *testing.T) {
	amount := MustNumeric("amount", numberx.UKStyleNumber)
	tmpl := New(amount, Sep("="), amount)

	// equal decimals with different scales are the same value
	_, err := tmpl.Parse("1.50=1.5")
	require.NoError(t, err)

	_, err = tmpl.Parse("1.5=1.6")
	assert.Error(t, err)
}

func TestTemplateFormatErrors(t *testing.T) {
	tmpl := dateTemplate()

	_, err := tmpl.Format(Record{"dd": 5, "yyyy": 2025})
	require.Error(t, err)
	assert.Equal(t, "Expected a value for #MM in record. Actual: none", err.Error())
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingValue))

	_, err = tmpl.ToFormatter()(Record{"dd": "5", "MM": 12, "yyyy": 2025})
	require.Error(t, err)
	assert.Equal(t, "Expected #dd to hold a value of type int. Actual: string", err.Error())

	_, err = tmpl.Format(Record{"dd": 32, "MM": 12, "yyyy": 2025})
	require.Error(t, err)
	assert.Equal(t, "Expected #dd to be between 1 and 31 (included). Actual: 32", err.Error())
}

func TestTemplateFormatWith(t *testing.T) {
	tmpl := dateTemplate()
	values := map[string]int{"dd": 1, "MM": 2, "yyyy": 3}

	s, err := tmpl.FormatWith(func(name string) (any, bool) {
		v, ok := values[name]
		return v, ok
	})
	require.NoError(t, err)
	assert.Equal(t, "01/02/0003", s)
}

func TestTemplateDescription(t *testing.T) {
	tmpl := dateTemplate()

	assert.Equal(t, "{dd}/{MM}/{yyyy}", tmpl.String())
	assert.Equal(t, []string{"#dd", "#MM", "#yyyy"}, tmpl.Labels())
	assert.Len(t, tmpl.Parts(), 5)
	assert.Len(t, tmpl.Fields(), 3)
	assert.Equal(t,
		"#dd: 2-digit number between 1 and 31\n#MM: 2-digit number between 1 and 12\n#yyyy: 4-digit number between 0 and 9999",
		tmpl.Describe())

	assert.Equal(t, "{{x}}", Sep("{x}").String())
}

func TestTemplateWithRest(t *testing.T) {
	key := MustRegexBounded("key", `[A-Za-z_]+`, "to be an identifier")
	tmpl := New(key, Sep(" = "), ToEnd("value"))

	r, err := tmpl.Parse("log_level = debug # comment")
	require.NoError(t, err)
	assert.Equal(t, Record{"key": "log_level", "value": "debug # comment"}, r)

	s, err := tmpl.Format(r)
	require.NoError(t, err)
	assert.Equal(t, "log_level = debug # comment", s)
}

func TestGet(t *testing.T) {
	r := Record{"dd": 5}

	v, err := Get[int](r, "dd")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = Get[string](r, "dd")
	require.Error(t, err)
	assert.Equal(t, "Expected #dd to hold a value of type string. Actual: int", err.Error())

	_, err = Get[int](r, "MM")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingValue))
}

func TestTemplateConcurrentUse(t *testing.T) {
	tmpl := dateTemplate()
	parse := tmpl.ToParser()
	format := tmpl.ToFormatter()

	var wg sync.WaitGroup
	errs := make(chan error, 28)
	for day := 1; day <= 28; day++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			text := fmt.Sprintf("%02d/02/2024", day)
			r, err := parse(text)
			if err != nil {
				errs <- err
				return
			}
			if s, err := format(r); err != nil || s != text {
				errs <- fmt.Errorf("round trip of %s gave %q: %v", text, s, err)
			}
		}(day)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
