package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/format"
	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/nbtio"
	"github.com/neworld-site/go-nbt/snbt"
)

func level() *nbt.Compound {
	player := nbt.NewCompound()
	player.PutInt("XpLevel", 31)
	player.PutString("Name", "Alex")
	pos, _ := nbt.NewList(nbt.Double(1), nbt.Double(70), nbt.Double(-5))
	player.Put("Pos", pos)
	data := nbt.NewCompound()
	data.Put("Player", player)
	data.PutLong("Time", 12000)
	root := nbt.NewCompound()
	root.Put("Data", data)
	return root
}

func TestEvalQuery(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{`Data.Player.XpLevel >= 30`, true},
		{`Data.Player.Name + "!"`, "Alex!"},
		{`root.Data.Time / 1000`, 12.0},
		{`getpath("Data.Player.Pos[1]")`, float64(70)},
		{`typeof("Data.Time")`, "TAG_Long"},
		{`snbt("Data.Player.Pos")`, "[1.0d,70.0d,-5.0d]"},
		{`len(Data.Player.Pos)`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := evalQuery(level(), tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if _, err := evalQuery(level(), `getpath("Data.Nope")`); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestWriteResult(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := writeResult(buf, []any{int32(1), "a"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("[\n  1,\n  \"a\"\n]\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMergeAll(t *testing.T) {
	overlay := nbt.NewCompound()
	player := nbt.NewCompound()
	player.PutInt("XpLevel", 5)
	overlay.Put("Data", nbt.NewCompound())
	overlay.GetCompound("Data").Put("Player", player)
	overlay.PutString("Version", "1.21")

	res := mergeAll(level(), overlay)
	if res.GetCompound("Data").GetCompound("Player").GetInt("XpLevel") != 5 {
		t.Error("overlay value lost")
	}
	if res.GetCompound("Data").GetCompound("Player").GetString("Name") != "Alex" {
		t.Error("base value lost")
	}
	if res.GetString("Version") != "1.21" {
		t.Error("new key lost")
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.dat")
	if err := nbtio.WriteFile(path, level(), format.ZlibFormat); err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{}
	c, f, acct, err := readInput(cfg, nil, path)
	if err != nil {
		t.Fatal(err)
	}
	if f != format.ZlibFormat || !nbt.Equal(c, level()) {
		t.Errorf("format %s, tree %v", f, c)
	}
	if !acct.IsUnlimited() || acct.Usage() != 0 {
		t.Errorf("accounter %d/%d", acct.Usage(), acct.Quota())
	}

	cfg.Quota = 100
	if _, _, _, err := readInput(cfg, nil, path); !errors.Is(err, budget.ErrExceeded) {
		t.Errorf("expected ErrExceeded, got %v", err)
	}

	raw := format.NoneFormat
	cfg = &MainConfig{InFormat: &raw}
	if _, _, _, err := readInput(cfg, nil, path); !errors.Is(err, nbt.ErrFormat) {
		t.Errorf("expected ErrFormat reading zlib as raw, got %v", err)
	}

	buf := &bytes.Buffer{}
	nbtio.WriteCompressed(level(), buf)
	c, f, _, err = readInput(&MainConfig{}, buf, "-")
	if err != nil || f != format.GZIPFormat || !nbt.Equal(c, level()) {
		t.Errorf("stdin: %s %v %v", f, c, err)
	}
}

func TestReadInputText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.snbt")
	if err := os.WriteFile(path, []byte(snbt.String(level(), snbt.Indent(2))), 0644); err != nil {
		t.Fatal(err)
	}
	c, f, _, err := readInput(&MainConfig{}, nil, path)
	if err != nil {
		t.Fatal(err)
	}
	if f != format.NoneFormat || !nbt.Equal(c, level()) {
		t.Errorf("format %s, tree %v", f, c)
	}
}
