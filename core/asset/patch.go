package asset

import (
	"github.com/peterbourgon/mergemap"
)

// patchAsset merges the asset with data from the patch map. It mutates the
// asset itself. Presence of a key in the map is what marks a field as "set";
// absent keys never touch the current value, which keeps present-but-empty
// distinguishable from not-provided.
func patchAsset(a *Asset, patchData map[string]interface{}) {
	a.URN = patchString("urn", patchData, a.URN)
	a.Type = Type(patchString("type", patchData, a.Type.String()))
	a.Service = patchString("service", patchData, a.Service)
	a.Name = patchString("name", patchData, a.Name)
	a.Description = patchString("description", patchData, a.Description)
	a.URL = patchString("url", patchData, a.URL)

	labels, exists := patchData["labels"]
	if exists {
		a.Labels = buildLabels(labels)
	}
	data, exists := patchData["data"]
	if exists {
		patchAssetData(a, data)
	}
}

// buildLabels builds labels from interface{}. Labels are a replace-on-patch
// field: the built map fully overwrites the previous one.
func buildLabels(data interface{}) map[string]string {
	var labels map[string]string
	switch d := data.(type) {
	case map[string]interface{}:
		labels = map[string]string{}
		for key, value := range d {
			s, ok := value.(string)
			if !ok {
				continue
			}
			labels[key] = s
		}

	case map[string]string:
		labels = d
	}

	return labels
}

// patchAssetData deep-merges the open metadata document.
func patchAssetData(a *Asset, data interface{}) {
	if data == nil {
		return
	}
	dataMap, ok := data.(map[string]interface{})
	if !ok {
		return
	}

	if a.Data == nil {
		a.Data = dataMap
		return
	}

	a.Data = mergemap.Merge(a.Data, dataMap)
}

func patchString(key string, data map[string]interface{}, defaultVal string) string {
	_, exists := data[key]
	if !exists {
		return defaultVal
	}

	return getString(key, data)
}

func getString(key string, data map[string]interface{}) string {
	val, exists := data[key]
	if !exists {
		return ""
	}
	stringVal, ok := val.(string)
	if !ok {
		return ""
	}

	return stringVal
}
