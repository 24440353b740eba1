package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jask/jaskfx/internal/currency"
)

const viewFile = "view.json"

// View is the list presentation remembered between sessions.
// Search text and the from/to selection are deliberately not kept.
type View struct {
	Sort string `json:"sort"`
}

// Direction parses the stored sort, falling back to def.
func (v View) Direction(def currency.Direction) currency.Direction {
	if v.Sort == "" {
		return def
	}
	d, err := currency.ParseDirection(v.Sort)
	if err != nil {
		return def
	}
	return d
}

// Prefs reads and writes dir/view.json.
type Prefs struct {
	dir string
}

// New uses dir; an empty dir means <user config dir>/jaskfx.
func New(dir string) (*Prefs, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "jaskfx")
	}
	return &Prefs{dir: dir}, nil
}

func (p *Prefs) SaveView(v View) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(p.dir, viewFile)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadView returns the zero View when nothing was saved yet.
func (p *Prefs) LoadView() (View, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, viewFile))
	if err != nil {
		if os.IsNotExist(err) {
			return View{}, nil
		}
		return View{}, err
	}
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return View{}, err
	}
	return v, nil
}
