package backend

import "testing"

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecodeListCoercion(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		count int
	}{
		{"null", `null`, 0},
		{"empty body", ``, 0},
		{"whitespace", "  \n", 0},
		{"bare object", `{"id":1,"name":"Acme"}`, 1},
		{"single element array", `[{"id":1,"name":"Acme"}]`, 1},
		{"multi element array", `[{"id":1},{"id":2}]`, 2},
		{"empty array", `[]`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := decodeList[item]([]byte(tc.body))
			if err != nil {
				t.Fatalf("decodeList(%q): %v", tc.body, err)
			}
			if out == nil {
				t.Fatalf("decodeList(%q) returned nil slice", tc.body)
			}
			if len(out) != tc.count {
				t.Fatalf("decodeList(%q): expected %d elements, got %d", tc.body, tc.count, len(out))
			}
		})
	}
}

func TestDecodeListPreservesElements(t *testing.T) {
	out, err := decodeList[item]([]byte(`{"id":7,"name":"Acme"}`))
	if err != nil {
		t.Fatalf("decodeList: %v", err)
	}
	if out[0].ID != 7 || out[0].Name != "Acme" {
		t.Fatalf("coerced element mangled: %+v", out[0])
	}
}

func TestDecodeListRejectsScalars(t *testing.T) {
	if _, err := decodeList[item]([]byte(`"hello"`)); err == nil {
		t.Fatal("scalar body must not decode as a list")
	}
	if _, err := decodeList[item]([]byte(`42`)); err == nil {
		t.Fatal("numeric body must not decode as a list")
	}
}
