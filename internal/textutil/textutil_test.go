package textutil

import (
	"reflect"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Hello", "hello"},
		{"Español", "espanol"},
		{"FRANÇAIS", "francais"},
		{"début", "debut"},
		{"Ñandú", "nandu"},
		{"été", "ete"},
		{"中文", "中文"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"drops single runes", "A Vlog 2024 x", []string{"vlog", "2024"}},
		{"punctuation separates", "Nickzzy - La Para (Video Oficial) #SPANISHDRILL",
			[]string{"nickzzy", "la", "para", "video", "oficial", "spanishdrill"}},
		{"apostrophes split words", "Le début d'une grande aventure",
			[]string{"le", "debut", "une", "grande", "aventure"}},
		{"accents folded", "Cómo GTA rompió", []string{"como", "gta", "rompio"}},
		{"cjk run is one token", "今天的中文课程", []string{"今天的中文课程"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	got := CleanTitle("  Learn\u200b   Chinese \n Mandarin  ")
	if got != "Learn Chinese Mandarin" {
		t.Fatalf("CleanTitle = %q", got)
	}
	if CollapseWhitespace("\t a \n b ") != "a b" {
		t.Fatal("CollapseWhitespace did not collapse")
	}
}
