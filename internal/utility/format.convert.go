package utility

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConvertStruct chuyển đổi một struct sang struct khác thông qua JSON marshal/unmarshal.
// target phải là con trỏ đến struct đích.
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(jsonData, target)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// String2ObjectID chuyển đổi chuỗi thành ObjectID.
// Trả về NilObjectID nếu chuỗi không hợp lệ.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
