package conan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		section string
		key     string
		value   string
		want    string
	}{
		{
			name:    "update existing key",
			input:   "[settings]\nos=Linux\ncompiler.cppstd=gnu17\n",
			section: "settings", key: "compiler.cppstd", value: "17",
			want: "[settings]\nos=Linux\ncompiler.cppstd=17\n",
		},
		{
			name:    "add key at end of section",
			input:   "[settings]\nos=Linux\n\n[conf]\ntools.build:jobs=4\n",
			section: "settings", key: "compiler.libcxx", value: "libstdc++11",
			want: "[settings]\nos=Linux\ncompiler.libcxx=libstdc++11\n\n[conf]\ntools.build:jobs=4\n",
		},
		{
			name:    "add key to last section",
			input:   "[settings]\nos=Linux\n",
			section: "settings", key: "arch", value: "x86_64",
			want: "[settings]\nos=Linux\narch=x86_64\n",
		},
		{
			name:    "append new section",
			input:   "[settings]\nos=Linux\n",
			section: "options", key: "*:*.shared", value: "True",
			want: "[settings]\nos=Linux\n\n[options]\n*:*.shared=True\n",
		},
		{
			name:    "missing trailing newline",
			input:   "[settings]\nos=Linux",
			section: "options", key: "*:*.shared", value: "True",
			want: "[settings]\nos=Linux\n\n[options]\n*:*.shared=True\n",
		},
		{
			name:    "bare key",
			input:   "[settings]\nos=Linux\n",
			section: "tool_requires", key: "cmake/3.27.0", value: "",
			want: "[settings]\nos=Linux\n\n[tool_requires]\ncmake/3.27.0\n",
		},
		{
			name:    "key in other section untouched",
			input:   "[settings]\nos=Linux\n[buildenv]\nos=Windows\n",
			section: "buildenv", key: "os", value: "Macos",
			want: "[settings]\nos=Linux\n[buildenv]\nos=Macos\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "default")
			if err := os.WriteFile(path, []byte(tt.input), 0o644); err != nil {
				t.Fatal(err)
			}

			if err := UpdateProfile(path, tt.section, tt.key, tt.value); err != nil {
				t.Fatalf("UpdateProfile failed: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", data, tt.want)
			}
		})
	}
}

func TestUpdateProfileMissing(t *testing.T) {
	err := UpdateProfile(filepath.Join(t.TempDir(), "missing"), "settings", "os", "Linux")
	if err == nil {
		t.Fatal("expected an error for a missing profile")
	}
}
