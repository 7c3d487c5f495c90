package database

import "testing"

// TestParseIndexTag kiểm tra phân tách tag index của model
func TestParseIndexTag(t *testing.T) {
	// Tag "unique" của videoId/channelId phải sinh ra đúng một cấu hình unique
	entries := parseIndexTag("unique")
	if len(entries) != 1 {
		t.Fatalf("Số cấu hình không khớp: muốn 1, nhận %d", len(entries))
	}
	if _, ok := entries[0]["unique"]; !ok {
		t.Errorf("Thiếu cấu hình unique trong %v", entries[0])
	}

	// Nhiều cấu hình cách nhau bởi dấu ';'
	entries = parseIndexTag("unique;single,order:-1")
	if len(entries) != 2 {
		t.Fatalf("Số cấu hình không khớp: muốn 2, nhận %d", len(entries))
	}
	if _, ok := entries[1]["single"]; !ok {
		t.Errorf("Thiếu cấu hình single trong %v", entries[1])
	}
	if entries[1]["order"] != "-1" {
		t.Errorf("Order không khớp: muốn -1, nhận %q", entries[1]["order"])
	}
}

// TestParseOrder kiểm tra thứ tự sắp xếp mặc định và giảm dần
func TestParseOrder(t *testing.T) {
	if got := parseOrder("single"); got != 1 {
		t.Errorf("Order mặc định phải là 1, nhận %d", got)
	}
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("Order giảm dần phải là -1, nhận %d", got)
	}
}
