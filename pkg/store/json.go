package store

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// FromJSON builds a Memory store from a JSON document. Top-level
// members name hives; nested objects are keys, and a key's "" member is
// its default value:
//
//	{
//	  "HKEY_CURRENT_USER": {
//	    "Software": {
//	      "Python": {
//	        "PythonCore": {
//	          "3.7": {"InstallPath": {"": "C:\\Python37\\"}}
//	        }
//	      }
//	    }
//	  }
//	}
func FromJSON(data []byte) (*Memory, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("store fixture is not valid JSON")
	}

	document := gjson.ParseBytes(data)
	if !document.IsObject() {
		return nil, errors.New("store fixture must be a JSON object")
	}

	m := &Memory{}

	var walkErr error

	document.ForEach(func(name, members gjson.Result) bool {
		hive, err := parseHive(name.String())
		if err != nil {
			walkErr = err

			return false
		}
		walkErr = loadKey(m, hive, "", members)

		return walkErr == nil
	})

	if walkErr != nil {
		return nil, walkErr
	}

	return m, nil
}

func parseHive(name string) (Hive, error) {
	switch name {
	case "HKEY_CURRENT_USER":
		return CurrentUser, nil
	case "HKEY_LOCAL_MACHINE":
		return LocalMachine, nil
	default:
		return 0, fmt.Errorf("unknown hive %q in store fixture", name)
	}
}

func loadKey(m *Memory, hive Hive, path string, members gjson.Result) error {
	if !members.IsObject() {
		return fmt.Errorf("store fixture key %q must be an object", path)
	}

	m.CreateKey(hive, path)

	var walkErr error

	members.ForEach(func(name, value gjson.Result) bool {
		if name.String() == "" {
			if value.Type != gjson.String {
				walkErr = fmt.Errorf("default value of store fixture key %q must be a string", path)

				return false
			}
			m.SetDefaultValue(hive, path, value.String())

			return true
		}

		walkErr = loadKey(m, hive, joinPath(path, name.String()), value)

		return walkErr == nil
	})

	return walkErr
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + `\` + name
}
