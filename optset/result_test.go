package optset

import "testing"

func TestAccessorDefaults(t *testing.T) {
	s := New()
	s.String("--name", "Name")
	s.Int("--port", "Port")
	s.Flag("--verbose", "Verbose")
	s.Int("--count", "Counts").Multiple()

	result, err := s.ParseWithHandler([]string{"prog"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Has("--name") {
		t.Error("nothing was parsed, Has must be false")
	}
	if v := result.MustGetString("--name", "fallback"); v != "fallback" {
		t.Errorf("expected fallback, got %q", v)
	}
	if v := result.MustGetInt("--port", 999); v != 999 {
		t.Errorf("expected 999, got %d", v)
	}
	if result.GetBool("--verbose") {
		t.Error("absent flag must read as false")
	}
	if got := result.GetIntSlice("--count"); len(got) != 0 {
		t.Errorf("absent multiple option must read as empty list, got %v", got)
	}
}

func TestAccessorKindMismatch(t *testing.T) {
	s := New()
	s.String("--name", "Name")

	result, err := s.ParseWithHandler([]string{"prog", "--name", "x"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.GetInt("--name"); ok {
		t.Error("string option read through GetInt must report absent")
	}
	if result.Has("--name") != true {
		t.Error("Has should still be true")
	}
}

func TestAccessorPanicsOnUndeclaredName(t *testing.T) {
	s := New()
	s.String("--name", "Name")
	result, err := s.ParseWithHandler([]string{"prog"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for undeclared name")
		}
	}()
	result.GetString("--missing")
}

func TestAccessorPanicsOnCallback(t *testing.T) {
	s := New()
	s.Callback("--ping", "Ping", func(any, string) {})
	result, err := s.ParseWithHandler([]string{"prog"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for callback access")
		}
	}()
	result.Has("--ping")
}
