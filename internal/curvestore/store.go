package curvestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/curves"
	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/ui"
	"github.com/simtools/pedal2go/internal/util"
)

const (
	curveFileExtension = ".json"
	curveFileVersion   = "1.0"
	fallbackCurveName  = "curve"
)

// curveDocument is the on-disk representation of a single curve file.
type curveDocument struct {
	Name      string       `json:"name"`
	Pedal     string       `json:"pedal,omitempty"`
	CurveType string       `json:"curve_type"`
	Points    [][2]float64 `json:"points"`
	Created   string       `json:"created,omitempty"`
	Version   string       `json:"version,omitempty"`
}

// Store owns the per-pedal curve library on disk, one JSON file per curve
// under <dataPath>/curves/<pedal>/.
type Store struct {
	baseDir string
	// listing cache per pedal, invalidated on every mutation
	cache cmap.ConcurrentMap[string, []string]
}

func NewStore(dataPath string) *Store {
	return &Store{
		baseDir: filepath.Join(dataPath, "curves"),
		cache:   cmap.New[[]string](),
	}
}

// PedalDir returns the curve directory of the given pedal, creating it if
// necessary.
func (s *Store) PedalDir(pedal pedals.Pedal) (string, error) {
	dir := filepath.Join(s.baseDir, string(pedal))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// List enumerates the names of all valid curve files of a pedal. Unparsable
// files are repaired when they match the concatenated-objects corruption
// pattern, otherwise they are skipped and logged, never a hard failure.
func (s *Store) List(pedal pedals.Pedal) ([]string, error) {
	if cached, ok := s.cache.Get(string(pedal)); ok {
		result := make([]string, len(cached))
		copy(result, cached)
		return result, nil
	}

	dir, err := s.PedalDir(pedal)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if !strings.HasSuffix(fileName, curveFileExtension) {
			continue
		}
		if strings.Contains(fileName, ".tmp.") {
			// leftover of an interrupted atomic write
			continue
		}

		path := filepath.Join(dir, fileName)
		if s.validateOrRepair(path) {
			names = append(names, strings.TrimSuffix(fileName, curveFileExtension))
		}
	}

	sort.Strings(names)
	s.cache.Set(string(pedal), names)

	result := make([]string, len(names))
	copy(result, names)
	return result, nil
}

// validateOrRepair parses a curve file, attempting an in-place repair of the
// concatenated-objects corruption pattern. Returns whether the file is
// usable afterwards.
func (s *Store) validateOrRepair(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		ui.Warning("Error reading curve file %s: %v", path, err)
		return false
	}

	if looksConcatenated(data) {
		ui.Warning("Detected corrupted curve file with multiple JSON objects: %s", path)
		repaired, ok := extractFirstObject(data)
		if !ok {
			return false
		}
		var doc curveDocument
		if err := json.Unmarshal(repaired, &doc); err != nil {
			ui.Error("Failed to extract valid JSON from corrupted curve file %s: %v", path, err)
			return false
		}
		fixed, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return false
		}
		if err := util.WriteFileAtomic(path, fixed); err != nil {
			ui.Error("Unable to rewrite repaired curve file %s: %v", path, err)
			return false
		}
		ui.Info("Fixed corrupted curve file: %s", path)
		return true
	}

	var doc curveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		ui.Warning("Skipping invalid JSON in curve file: %s", path)
		return false
	}
	if len(doc.Name) <= 0 || len(doc.Points) <= 0 {
		ui.Warning("Skipping curve file with missing required fields: %s", path)
		return false
	}
	return true
}

// Load reads a single curve of a pedal by name.
func (s *Store) Load(pedal pedals.Pedal, name string) (curves.Curve, error) {
	dir, err := s.PedalDir(pedal)
	if err != nil {
		return curves.Curve{}, err
	}

	fileName := util.SanitizeFileName(name, fallbackCurveName) + curveFileExtension
	path := filepath.Join(dir, fileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return curves.Curve{}, fmt.Errorf("%w: %s", pedals.ErrCurveNotFound, name)
	}
	if err != nil {
		return curves.Curve{}, err
	}

	var doc curveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		// a concatenated write artifact may still contain one good object
		repaired, ok := extractFirstObject(data)
		if !ok {
			return curves.Curve{}, fmt.Errorf("%w: %s", pedals.ErrCurveInvalid, name)
		}
		if err := json.Unmarshal(repaired, &doc); err != nil {
			return curves.Curve{}, fmt.Errorf("%w: %s", pedals.ErrCurveInvalid, name)
		}
	}

	if len(doc.Points) <= 0 {
		return curves.Curve{}, fmt.Errorf("%w: %s has no points", pedals.ErrCurveInvalid, name)
	}

	return docToCurve(doc, name), nil
}

func docToCurve(doc curveDocument, fallbackName string) curves.Curve {
	name := doc.Name
	if len(name) <= 0 {
		name = fallbackName
	}
	curveType, err := curves.ParseCurveType(doc.CurveType)
	if err != nil {
		curveType = curves.TypeCustom
	}

	points := make([]curves.Point, 0, len(doc.Points))
	for _, p := range doc.Points {
		points = append(points, curves.Point{X: p[0], Y: p[1]})
	}

	return curves.Curve{
		Name:   name,
		Type:   curveType,
		Points: points,
	}
}

// Save persists a curve for a pedal, rejecting it if fewer than 2 finite
// points remain after filtering. The write is atomic and verified by
// re-reading the file afterwards.
func (s *Store) Save(pedal pedals.Pedal, name string, points []curves.Point, curveType curves.CurveType) error {
	valid := curves.FilterFinitePoints(points)
	if len(valid) < 2 {
		return fmt.Errorf("%w: %s", pedals.ErrInvalidCurve, name)
	}

	dir, err := s.PedalDir(pedal)
	if err != nil {
		return err
	}

	sanitized := util.SanitizeFileName(name, fallbackCurveName)
	path := filepath.Join(dir, sanitized+curveFileExtension)

	doc := curveDocument{
		Name:      name,
		Pedal:     string(pedal),
		CurveType: string(curveType),
		Points:    make([][2]float64, 0, len(valid)),
		Created:   time.Now().Format(time.RFC3339),
		Version:   curveFileVersion,
	}
	for _, p := range valid {
		doc.Points = append(doc.Points, [2]float64{p.X, p.Y})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data); err != nil {
		return err
	}

	s.cache.Remove(string(pedal))

	// post-write verification, mismatch is logged but not fatal
	saved, err := s.Load(pedal, name)
	if err != nil || len(saved.Points) != len(valid) {
		ui.Warning("Curve '%s' for %s was saved but verification failed", name, pedal)
	} else {
		ui.Debug("Saved curve '%s' for %s with %d points", name, pedal, len(valid))
	}

	return nil
}

// Delete removes a curve file by name.
func (s *Store) Delete(pedal pedals.Pedal, name string) error {
	dir, err := s.PedalDir(pedal)
	if err != nil {
		return err
	}

	sanitized := util.SanitizeFileName(name, fallbackCurveName)
	path := filepath.Join(dir, sanitized+curveFileExtension)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", pedals.ErrCurveNotFound, name)
	}
	if err := os.Remove(path); err != nil {
		return err
	}

	s.cache.Remove(string(pedal))
	return nil
}

// Exists reports whether a curve file with the given name is present.
func (s *Store) Exists(pedal pedals.Pedal, name string) bool {
	dir, err := s.PedalDir(pedal)
	if err != nil {
		return false
	}
	sanitized := util.SanitizeFileName(name, fallbackCurveName)
	_, err = os.Stat(filepath.Join(dir, sanitized+curveFileExtension))
	return err == nil
}

// SeedPresets writes the curve family templates and the built-in preset
// library plus any config-defined presets for every pedal. Seeding is
// idempotent, existing files with the same name are left untouched.
func (s *Store) SeedPresets(extra []configuration.PresetConfig) {
	for _, pedal := range pedals.All() {
		for _, curveType := range []curves.CurveType{
			curves.TypeLinear, curves.TypeExponential, curves.TypeLogarithmic, curves.TypeSCurve,
		} {
			s.seedCurve(pedal, curves.Curve{
				Name:   string(curveType),
				Type:   curveType,
				Points: curves.GeneratePoints(curveType),
			})
		}
		for _, preset := range curves.PresetsFor(pedal) {
			s.seedCurve(pedal, preset)
		}
	}

	for _, presetConfig := range extra {
		pedal, err := pedals.Parse(presetConfig.Pedal)
		if err != nil {
			ui.Warning("Skipping preset '%s': %v", presetConfig.Name, err)
			continue
		}
		curveType, err := curves.ParseCurveType(presetConfig.CurveType)
		if err != nil {
			curveType = curves.TypeCustom
		}
		points := make([]curves.Point, 0, len(presetConfig.Points))
		for _, p := range presetConfig.Points {
			points = append(points, curves.Point{X: p[0], Y: p[1]})
		}
		s.seedCurve(pedal, curves.Curve{
			Name:   presetConfig.Name,
			Type:   curveType,
			Points: points,
		})
	}
}

func (s *Store) seedCurve(pedal pedals.Pedal, curve curves.Curve) {
	if s.Exists(pedal, curve.Name) {
		return
	}
	if err := s.Save(pedal, curve.Name, curve.Points, curve.Type); err != nil {
		ui.Warning("Unable to seed preset '%s' for %s: %v", curve.Name, pedal, err)
		return
	}
	ui.Debug("Created default '%s' curve preset for %s", curve.Name, pedal)
}
