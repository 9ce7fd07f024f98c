package quran

// envelope is the common wrapper of every alquran.cloud response.
type envelope[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type metaData struct {
	Pages struct {
		Count      int            `json:"count"`
		References []apiReference `json:"references"`
	} `json:"pages"`
}

type apiReference struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

type surahData struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}
