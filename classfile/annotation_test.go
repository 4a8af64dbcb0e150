package classfile

import (
	"errors"
	"testing"
)

func TestParseElementValueSimple(t *testing.T) {
	c := newCursor([]byte{byte(EVInt), 0x00, 0x05})
	ev := parseElementValue(c)
	if ev.Tag != EVInt || ev.ConstValueIndex != 5 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseElementValueEnum(t *testing.T) {
	c := newCursor([]byte{byte(EVEnum), 0x00, 0x01, 0x00, 0x02})
	ev := parseElementValue(c)
	if ev.Tag != EVEnum || ev.TypeNameIndex != 1 || ev.ConstNameIndex != 2 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseElementValueArray(t *testing.T) {
	c := newCursor([]byte{
		byte(EVArray), 0x00, 0x02,
		byte(EVInt), 0x00, 0x01,
		byte(EVInt), 0x00, 0x02,
	})
	ev := parseElementValue(c)
	if ev.Tag != EVArray || len(ev.ArrayValues) != 2 {
		t.Fatalf("got %+v", ev)
	}
	if ev.ArrayValues[0].ConstValueIndex != 1 || ev.ArrayValues[1].ConstValueIndex != 2 {
		t.Fatalf("array values = %+v", ev.ArrayValues)
	}
}

func TestParseElementValueNestedAnnotation(t *testing.T) {
	c := newCursor([]byte{
		byte(EVAnnotation),
		0x00, 0x01, // type_index
		0x00, 0x01, // num pairs
		0x00, 0x02, // name_index
		byte(EVInt), 0x00, 0x03, // value
	})
	ev := parseElementValue(c)
	if ev.Tag != EVAnnotation || ev.AnnotationValue == nil {
		t.Fatalf("got %+v", ev)
	}
	if len(ev.AnnotationValue.ElementValuePairs) != 1 {
		t.Fatalf("pairs = %+v", ev.AnnotationValue.ElementValuePairs)
	}
}

func TestParseElementValueUnknownTagPanics(t *testing.T) {
	c := newCursor([]byte{'?'})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownElementValueTag) {
			t.Fatalf("panic = %v, want ErrUnknownElementValueTag", r)
		}
	}()
	parseElementValue(c)
}

func TestParseAnnotations(t *testing.T) {
	c := newCursor([]byte{
		0x00, 0x01, // num_annotations
		0x00, 0x07, // type_index
		0x00, 0x00, // num_element_value_pairs
	})
	anns := parseAnnotations(c)
	if len(anns) != 1 || anns[0].TypeIndex != 7 {
		t.Fatalf("got %+v", anns)
	}
}

func TestParseParameterAnnotations(t *testing.T) {
	c := newCursor([]byte{
		0x02,       // num_parameters
		0x00, 0x00, // param 0: 0 annotations
		0x00, 0x01, 0x00, 0x05, 0x00, 0x00, // param 1: 1 annotation, type_index 5
	})
	params := parseParameterAnnotations(c)
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2", len(params))
	}
	if len(params[0].Annotations) != 0 {
		t.Fatalf("param 0 = %+v", params[0])
	}
	if len(params[1].Annotations) != 1 || params[1].Annotations[0].TypeIndex != 5 {
		t.Fatalf("param 1 = %+v", params[1])
	}
}
