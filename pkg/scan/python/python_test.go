package python

import (
	"fmt"
	"testing"
)

func ExampleNormalize() {
	fmt.Println(Normalize("Flask_SQLAlchemy"))
	fmt.Println(Normalize("zope.interface"))
	// Output:
	// flask-sqlalchemy
	// zope-interface
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Black", "black"},
		{"black", "black"},
		{"typing_extensions", "typing-extensions"},
		{"zope.interface", "zope-interface"},
		{"A__b--c..d", "a-b-c-d"},
		{"  requests ", "requests"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, name := range []string{"Flask-SQLAlchemy", "ruamel.yaml", "pip"} {
		once := Normalize(name)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", name, twice, once)
		}
	}
}

func TestDepName(t *testing.T) {
	tests := []struct {
		spec string
		want string
		ok   bool
	}{
		{"requests", "requests", true},
		{"requests>=2.28.0", "requests", true},
		{"flask[async]>=2.0", "flask", true},
		{"django ==4.2", "django", true},
		{"pip @ https://example.com/pip.whl", "pip", true},
		{"httpx; python_version >= '3.9'", "httpx", true},
		{"  pydantic  ", "pydantic", true},
		{"# comment", "", false},
		{"", "", false},
		{"-r requirements.txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, ok := depName(tt.spec)
			if ok != tt.ok || got != tt.want {
				t.Errorf("depName(%q) = (%q, %v), want (%q, %v)", tt.spec, got, ok, tt.want, tt.ok)
			}
		})
	}
}
