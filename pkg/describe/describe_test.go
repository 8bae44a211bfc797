package describe_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/proptypes"
	"github.com/dmitrymomot/proptypes/pkg/checkers"
	"github.com/dmitrymomot/proptypes/pkg/describe"
)

type customChecker struct{}

func (customChecker) Validate(proptypes.Props, string, string) error { return nil }

func userChecker() *proptypes.ChainableChecker {
	return proptypes.New(checkers.Shape(map[string]proptypes.TypeChecker{
		"id":   proptypes.New(checkers.UUID()).Required(),
		"role": proptypes.New(checkers.OneOf("admin", "member")).Default("member"),
		"bio":  proptypes.New(checkers.String()).Nullable().Default(nil),
		"tags": proptypes.New(checkers.ArrayOf(checkers.String())),
	})).Required().Model()
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	t.Run("chainable shape", func(t *testing.T) {
		t.Parallel()
		d := describe.Describe(userChecker())

		assert.Equal(t, "shape", d.Type)
		assert.True(t, d.Required)
		assert.True(t, d.Model)
		assert.False(t, d.Nullable)
		assert.False(t, d.HasDefault)
		require.Len(t, d.Fields, 4)

		assert.Equal(t, &describe.Descriptor{Type: "uuid", Required: true}, d.Fields["id"])
		assert.Equal(t, &describe.Descriptor{
			Type:       "enum",
			HasDefault: true,
			Default:    "member",
			Values:     []any{"admin", "member"},
		}, d.Fields["role"])
		assert.Equal(t, &describe.Descriptor{Type: "string", Nullable: true, HasDefault: true}, d.Fields["bio"])
		assert.Equal(t, &describe.Descriptor{Type: "array", Items: &describe.Descriptor{Type: "string"}}, d.Fields["tags"])
	})

	t.Run("double wrapped flags accumulate", func(t *testing.T) {
		t.Parallel()
		d := describe.Describe(proptypes.New(proptypes.New(checkers.Int()).Required()).Nullable())
		assert.Equal(t, &describe.Descriptor{Type: "int", Required: true, Nullable: true}, d)
	})

	t.Run("unnamed checker uses go type", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "describe_test.customChecker", describe.Describe(customChecker{}).Type)
	})

	t.Run("nil checker", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "unknown", describe.Describe(nil).Type)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()
	d := describe.Describe(userChecker())

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, describe.Encode(&buf, describe.FormatJSON, d))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "shape", decoded["type"])
		assert.Equal(t, true, decoded["model"])

		fields := decoded["fields"].(map[string]any)
		role := fields["role"].(map[string]any)
		assert.Equal(t, "member", role["default"])
		assert.Equal(t, true, role["has_default"])
		assert.NotContains(t, fields["id"].(map[string]any), "default")
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		data, err := describe.ToYAML(d)
		require.NoError(t, err)

		var decoded describe.Descriptor
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, "shape", decoded.Type)
		assert.True(t, decoded.Required)
		assert.Equal(t, "member", decoded.Fields["role"].Default)
		assert.Equal(t, "string", decoded.Fields["tags"].Items.Type)
	})

	t.Run("field mapping", func(t *testing.T) {
		t.Parallel()
		data, err := describe.ToJSON(describe.DescribeFields(map[string]proptypes.TypeChecker{
			"name": proptypes.New(checkers.String()).Required(),
		}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":{"type":"string","required":true}}`, string(data))
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()
		err := describe.Encode(&bytes.Buffer{}, describe.Format("xml"), d)
		assert.ErrorIs(t, err, describe.ErrUnsupportedFormat)
	})
}
