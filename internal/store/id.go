package store

import "go.mongodb.org/mongo-driver/bson/primitive"

// parseID maps an opaque string id onto the value actually stored in the _id
// field. Historically the catalog was seeded with plain string ids
// ("prov_001") while documents created through the API get native ObjectIDs,
// so 24-character hex strings are treated as ObjectIDs and everything else as
// opaque strings. This dual handling stays confined to the storage adapters.
func parseID(id string) interface{} {
	if len(id) == 24 {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			return oid
		}
	}
	return id
}
