package basesvc

import "testing"

func TestToUpdateData_Passthrough(t *testing.T) {
	src := &UpdateData{Set: map[string]interface{}{"title": "abc"}}
	got, err := ToUpdateData(src)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if got != src {
		t.Error("ToUpdateData(*UpdateData) phải trả về đúng con trỏ truyền vào")
	}

	got2, err := ToUpdateData(UpdateData{Inc: map[string]interface{}{"likes": 1}})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if got2.Inc["likes"] == nil {
		t.Error("ToUpdateData(UpdateData) phải giữ nguyên trường Inc")
	}
}

func TestToUpdateData_OperatorMap(t *testing.T) {
	got, err := ToUpdateData(map[string]interface{}{
		"$set":   map[string]interface{}{"title": "xyz"},
		"$unset": map[string]interface{}{"description": ""},
	})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if got.Set["title"] != "xyz" {
		t.Errorf("Set[title] = %v, muốn xyz", got.Set["title"])
	}
	if _, ok := got.Unset["description"]; !ok {
		t.Error("Unset phải chứa description")
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	got, err := ToUpdateData(map[string]interface{}{"name": "kênh mới"})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if got.Set["name"] != "kênh mới" {
		t.Errorf("Map thường phải được wrap trong $set, nhận %v", got.Set)
	}
	if got.Unset != nil || got.Inc != nil {
		t.Error("Map thường không được sinh ra operator nào khác ngoài $set")
	}
}
