package csvrows

import (
	"errors"
	"github.com/google/go-cmp/cmp"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadAll(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    [][]string
	}{
		{
			name:    "quoted comma",
			content: "keeper, The Sun ,\"Warm, bright\"\naction,Draw 2,Draw two cards\n",
			want: [][]string{
				{"keeper", "The Sun", "Warm, bright"},
				{"action", "Draw 2", "Draw two cards"},
			},
		},
		{
			name:    "ragged rows",
			content: "goal,Day\nkeeper,Moon,Night,extra,columns\n",
			want: [][]string{
				{"goal", "Day"},
				{"keeper", "Moon", "Night", "extra", "columns"},
			},
		},
		{
			name:    "literal backslash n kept",
			content: `new_rule,Draw 2,Draw 2 cards\nthen play` + "\n",
			want: [][]string{
				{"new_rule", "Draw 2", `Draw 2 cards\nthen play`},
			},
		},
		{
			name:    "bare quotes in unquoted cell",
			content: "keeper,The \"Big\" One,x\n",
			want: [][]string{
				{"keeper", `The "Big" One`, "x"},
			},
		},
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadAll(writeFile(t, tt.content))
			if err != nil {
				t.Fatalf("ReadAll() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadAll() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() error = %v, want %v", err, fs.ErrNotExist)
	}
}

func TestEach_ReadError(t *testing.T) {
	calls := 0
	err := Each(t.TempDir(), func(row []string) error {
		calls++
		return nil
	})
	if err == nil {
		t.Error("Each() on a directory should return an error")
	}
	if calls != 0 {
		t.Errorf("callback called %d times, want 0", calls)
	}
}

func TestNext_Restartable(t *testing.T) {
	path := writeFile(t, "a,b,c\nd,e,f\n")
	for pass := 0; pass < 2; pass++ {
		r, err := Open(path)
		if err != nil {
			t.Fatal(err)
		}
		first, err := r.Next()
		if err != nil || first[0] != "a" {
			t.Fatalf("pass %d: Next() = %v, %v", pass, first, err)
		}
		r.Close()
	}
}

func TestEach_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Each(writeFile(t, "a\nb\nc\n"), func(row []string) error {
		calls++
		if row[0] == "b" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Each() error = %v, want %v", err, stop)
	}
	if calls != 2 {
		t.Errorf("callback called %d times, want 2", calls)
	}
}
