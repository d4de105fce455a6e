package hangul

// Category groups registry items the way the learning app presents them.
type Category struct {
	Name  string
	Items []string
}

var basicVowels = []string{
	"ㅏ", "ㅑ", "ㅓ", "ㅕ", "ㅗ", "ㅛ", "ㅜ", "ㅠ", "ㅡ", "ㅣ",
}

var complexVowels = []string{
	"ㅐ", "ㅒ", "ㅔ", "ㅖ", "ㅘ", "ㅙ", "ㅚ", "ㅝ", "ㅞ", "ㅟ", "ㅢ",
}

var basicConsonants = []string{
	"ㄱ", "ㄴ", "ㄷ", "ㄹ", "ㅁ", "ㅂ", "ㅅ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

var doubleConsonants = []string{
	"ㄲ", "ㄸ", "ㅃ", "ㅆ", "ㅉ",
}

var syllableExamples = []string{
	"가", "나", "다", "라", "마", "바", "사", "아", "자", "차", "카", "타", "파", "하",
	"고", "노", "도", "로", "모", "보", "소", "오", "조", "초", "코", "토", "포", "호",
	"구", "누", "두", "루", "무", "부", "수", "우", "주", "추", "쿠", "투", "푸", "후",
	"그", "느", "드", "르", "므", "브", "스", "으", "즈", "츠", "크", "트", "프", "흐",
	"기", "니", "디", "리", "미", "비", "시", "이", "지", "치", "키", "티", "피", "히",
}

var basicPhrases = []string{
	"안녕하세요",  // hello (formal)
	"안녕",     // hi/bye (casual)
	"감사합니다",  // thank you (formal)
	"고마워",    // thanks (casual)
	"제이름은",   // my name is
	"죄송합니다",  // I'm sorry (formal)
	"네",      // yes
	"아니요",    // no
	"안녕히가세요", // goodbye (to the person leaving)
	"안녕히계세요", // goodbye (when you leave)
}

// Sino-Korean numbers 1 through 10.
var sinoNumbers = []string{
	"일", "이", "삼", "사", "오", "육", "칠", "팔", "구", "십",
}

// Categories returns the source lists in presentation order. The order is
// fixed: it determines registry iteration order and nothing else.
func Categories() []Category {
	return []Category{
		{Name: "basic vowels", Items: basicVowels},
		{Name: "complex vowels", Items: complexVowels},
		{Name: "basic consonants", Items: basicConsonants},
		{Name: "double consonants", Items: doubleConsonants},
		{Name: "syllable examples", Items: syllableExamples},
		{Name: "basic phrases", Items: basicPhrases},
		{Name: "numbers (1-10)", Items: sinoNumbers},
	}
}
