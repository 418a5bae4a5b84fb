package repository

import (
	"reflect"
	"strings"

	"gorm.io/gorm/schema"
)

var naming = schema.NamingStrategy{}

// columnUpdates translates the JSON field names clients send into the
// model's column names. Keys matching no model field are dropped, so a
// partial update can never reach for a column that does not exist.
func columnUpdates(model interface{}, fields map[string]interface{}) map[string]interface{} {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	columns := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonName := strings.Split(field.Tag.Get("json"), ",")[0]
		if jsonName == "" {
			jsonName = field.Name
		}
		if jsonName == "-" {
			continue
		}
		columns[jsonName] = naming.ColumnName("", field.Name)
	}

	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if column, ok := columns[key]; ok {
			updates[column] = value
		}
	}
	return updates
}
