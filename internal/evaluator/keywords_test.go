package evaluator

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple words",
			text: "healthy meals",
			want: []string{"healthy", "meals"},
		},
		{
			name: "lowercases and splits punctuation",
			text: "Free Coworking, with Wi-Fi!",
			want: []string{"free", "coworking", "with", "wi", "fi"},
		},
		{
			name: "keeps plus and digits",
			text: "c++ classes for 55+",
			want: []string{"c++", "classes", "for", "55+"},
		},
		{
			name: "keeps duplicates in order",
			text: "bike bike lane",
			want: []string{"bike", "bike", "lane"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "only separators",
			text: "  ... !!!  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
