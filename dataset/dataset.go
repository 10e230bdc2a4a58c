// Package dataset loads and saves geometry datasets from common GIS
// file formats. GeoJSON documents and ESRI shapefiles are read into
// go-geom geometries, results are written back out as GeoJSON feature
// collections.
package dataset

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"

	"github.com/peterhenningsen/jsts/geojson"
)

// Load reads all geometries from a dataset file, picking the decoder
// from the file extension.
func Load(path string) ([]geom.T, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return LoadShapefile(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	default:
		return nil, errors.Newf("unsupported dataset format: %s", path)
	}
}

// LoadGeoJSON reads all geometries from a GeoJSON document.
func LoadGeoJSON(path string) ([]geom.T, error) {
	features, err := geojson.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return geojson.ToGeoms(features)
}

// Save writes geometries as a GeoJSON feature collection, one feature
// per geometry.
func Save(path string, geoms []geom.T) error {
	fc, err := geojson.FeatureCollectionFromGeoms(geoms)
	if err != nil {
		return err
	}
	return geojson.WriteFile(path, fc)
}
