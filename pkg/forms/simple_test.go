package forms_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/model"
)

func menuForm() *forms.SimpleForm {
	return forms.NewSimpleForm("Menu").
		SetContent("Pick a destination").
		AddButton("Spawn").
		AddButton("Shop", forms.WithButtonKey("shop"), forms.WithImage(model.ImageTypeURL, "https://example.com/shop.png")).
		AddButton("Arena")
}

func TestSimpleFormDecode(t *testing.T) {
	form := menuForm()
	cases := []struct {
		raw  any
		want model.Key
	}{
		{0, model.IndexKey(0)},
		{1, model.NameKey("shop")},
		{int64(2), model.IndexKey(2)},
		{2.0, model.IndexKey(2)},
	}
	for _, tc := range cases {
		decoded, err := form.Decode(tc.raw)
		if err != nil {
			t.Fatalf("decode %v: %v", tc.raw, err)
		}
		if decoded != tc.want {
			t.Fatalf("decode %v: want %v, got %v", tc.raw, tc.want, decoded)
		}
	}
}

func TestSimpleFormDecode_OutOfRange(t *testing.T) {
	form := menuForm()
	for _, raw := range []any{-1, 3, 100, -100} {
		_, err := form.Decode(raw)
		if !errors.Is(err, forms.ErrIndexOutOfRange) {
			t.Fatalf("index %v: expected out of range, got %v", raw, err)
		}
		respErr, _ := forms.AsResponseError(err)
		if respErr.Index != raw.(int) {
			t.Fatalf("expected error to name index %v, got %d", raw, respErr.Index)
		}
	}
}

func TestSimpleFormDecode_LargeIndicesAreOutOfRange(t *testing.T) {
	form := menuForm()
	raws := []any{int64(1) << 40, -(int64(1) << 40), 1e12}
	for _, body := range []string{"5000000000", "-5000000000", "99999999999999999999"} {
		raw, err := forms.ParseResponse([]byte(body))
		if err != nil {
			t.Fatalf("parse %s: %v", body, err)
		}
		raws = append(raws, raw)
	}

	for _, raw := range raws {
		_, err := form.Decode(raw)
		if !errors.Is(err, forms.ErrIndexOutOfRange) {
			t.Fatalf("index %v: expected out of range, got %v", raw, err)
		}
		respErr, _ := forms.AsResponseError(err)
		if respErr.Received != "integer" {
			t.Fatalf("index %v: expected integer, got %q", raw, respErr.Received)
		}
		if respErr.Value != raw {
			t.Fatalf("index %v: expected error to carry the value, got %v", raw, respErr.Value)
		}
	}
}

func TestSimpleFormDecode_FractionalLiteralRejected(t *testing.T) {
	raw, err := forms.ParseResponse([]byte("1.0"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := menuForm().Decode(raw); !errors.Is(err, forms.ErrTypeMismatch) {
		t.Fatalf("expected type mismatch for 1.0 literal, got %v", err)
	}
}

func TestSimpleFormDecode_TypeMismatch(t *testing.T) {
	form := menuForm()
	for _, raw := range []any{"1", true, 1.5, []any{1}} {
		if _, err := form.Decode(raw); !errors.Is(err, forms.ErrTypeMismatch) {
			t.Fatalf("%#v: expected type mismatch, got %v", raw, err)
		}
	}
}

func TestSimpleFormDecode_NilIsClose(t *testing.T) {
	decoded, err := menuForm().Decode(nil)
	if err != nil || decoded != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", decoded, err)
	}
}

func TestSimpleForm_EmptyButtonsRejectEveryIndex(t *testing.T) {
	form := forms.NewSimpleForm("Empty")
	if _, err := form.Decode(0); !errors.Is(err, forms.ErrIndexOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestSimpleForm_InvalidImageRecorded(t *testing.T) {
	form := forms.NewSimpleForm("x").AddButton("a", forms.WithImage("gif", "a.gif"))
	if form.Err() == nil {
		t.Fatalf("expected invalid image type to be recorded")
	}
	if _, err := form.Decode(0); !errors.Is(err, forms.ErrRegistryFault) {
		t.Fatalf("expected registry fault, got %v", err)
	}
}
