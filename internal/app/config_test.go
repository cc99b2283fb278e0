package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{EnvStaticDir: "", EnvDebug: "", EnvStdioLog: ""},
			want: Config{StaticDir: DefaultStaticDir},
		},
		{
			name: "overrides",
			env:  map[string]string{EnvStaticDir: "/srv/app/static", EnvDebug: "true", EnvStdioLog: "/tmp/out.log"},
			want: Config{StaticDir: "/srv/app/static", Debug: true, StdioLog: "/tmp/out.log"},
		},
		{
			name:    "bad debug flag",
			env:     map[string]string{EnvStaticDir: "", EnvDebug: "sometimes", EnvStdioLog: ""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := DefaultConfigFromEnv()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DefaultConfigFromEnv() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}
