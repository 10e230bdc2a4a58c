package geojson

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	gj "github.com/paulmach/go.geojson"
	"github.com/twpayne/go-geom"
)

// ReadFile loads a GeoJSON document. The document may be a
// FeatureCollection, a single Feature, or a bare Geometry; the result is
// always a flat feature list.
func ReadFile(path string) ([]*gj.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	switch probe.Type {
	case "FeatureCollection":
		fc := &gj.FeatureCollection{}
		if err := json.Unmarshal(data, fc); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return fc.Features, nil
	case "Feature":
		f := &gj.Feature{}
		if err := json.Unmarshal(data, f); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return []*gj.Feature{f}, nil
	case "":
		return nil, errors.Newf("%s: not a geojson document", path)
	default:
		g := &gj.Geometry{}
		if err := json.Unmarshal(data, g); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return []*gj.Feature{gj.NewFeature(g)}, nil
	}
}

// WriteFile writes a feature collection as a GeoJSON document.
func WriteFile(path string, fc *gj.FeatureCollection) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer out.Close()

	return errors.Wrapf(json.NewEncoder(out).Encode(fc), "writing %s", path)
}

// ToGeoms converts the geometries of a feature list. Features without a
// geometry are skipped.
func ToGeoms(features []*gj.Feature) ([]geom.T, error) {
	out := make([]geom.T, 0, len(features))
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		g, err := ToGeom(f.Geometry)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// FeatureCollectionFromGeoms wraps geometries into a feature collection,
// one feature per geometry.
func FeatureCollectionFromGeoms(geoms []geom.T) (*gj.FeatureCollection, error) {
	fc := gj.NewFeatureCollection()
	for _, g := range geoms {
		gg, err := FromGeom(g)
		if err != nil {
			return nil, err
		}
		fc.AddFeature(gj.NewFeature(gg))
	}
	return fc, nil
}
