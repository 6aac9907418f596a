package domain

import "strings"

// WordPair represents an English word and its Chinese meaning.
// English is the key: saving the same English word replaces its meaning.
type WordPair struct {
	English string `json:"english" validate:"required,max=255"`
	Chinese string `json:"chinese" validate:"required,max=255"`
}

// Normalize trims surrounding whitespace from both sides of the pair
func (p WordPair) Normalize() WordPair {
	return WordPair{
		English: strings.TrimSpace(p.English),
		Chinese: strings.TrimSpace(p.Chinese),
	}
}

// DefaultWordPairs returns the pairs seeded into an empty word table
func DefaultWordPairs() []WordPair {
	return []WordPair{
		{English: "hello", Chinese: "你好"},
		{English: "world", Chinese: "世界"},
		{English: "apple", Chinese: "苹果"},
		{English: "banana", Chinese: "香蕉"},
		{English: "cat", Chinese: "猫"},
		{English: "dog", Chinese: "狗"},
		{English: "book", Chinese: "书"},
		{English: "computer", Chinese: "电脑"},
		{English: "sun", Chinese: "太阳"},
		{English: "moon", Chinese: "月亮"},
	}
}
