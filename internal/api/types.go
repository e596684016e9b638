package api

// Quote from GET /quote. Finnhub returns an all-zero quote for unknown
// symbols rather than a 404.
type Quote struct {
	CurrentPrice  float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// CompanyProfile from GET /stock/profile2.
//
// Every field is optional: coverage varies by listing and plan, and the
// API omits what it does not have. Pointers distinguish "absent" from a
// legitimate zero.
type CompanyProfile struct {
	Country              *string  `json:"country"`
	Currency             *string  `json:"currency"`
	Exchange             *string  `json:"exchange"`
	Name                 *string  `json:"name"`
	Ticker               *string  `json:"ticker"`
	IPO                  *string  `json:"ipo"`
	MarketCapitalization *float64 `json:"marketCapitalization"`
	SharesOutstanding    *float64 `json:"shareOutstanding"`
	Logo                 *string  `json:"logo"`
	Phone                *string  `json:"phone"`
	WebURL               *string  `json:"weburl"`
	Industry             *string  `json:"finnhubIndustry"`
}

// Candles from GET /stock/candle. Parallel arrays, one entry per bar.
// Status is "ok" or "no_data"; with "no_data" all arrays are empty.
type Candles struct {
	Open      []float64 `json:"o"`
	High      []float64 `json:"h"`
	Low       []float64 `json:"l"`
	Close     []float64 `json:"c"`
	Volume    []float64 `json:"v"`
	Timestamp []int64   `json:"t"`
	Status    string    `json:"s"`
}

// Resolution values accepted by candle endpoints.
type Resolution string

const (
	ResolutionMinute        Resolution = "1"
	ResolutionFiveMinutes   Resolution = "5"
	ResolutionFifteenMin    Resolution = "15"
	ResolutionThirtyMinutes Resolution = "30"
	ResolutionHour          Resolution = "60"
	ResolutionDay           Resolution = "D"
	ResolutionWeek          Resolution = "W"
	ResolutionMonth         Resolution = "M"
)

// Symbol from GET /stock/symbol. Identifier fields beyond the ticker are
// per-entity optional.
type Symbol struct {
	Symbol        string  `json:"symbol"`
	DisplaySymbol string  `json:"displaySymbol"`
	Description   string  `json:"description"`
	Type          *string `json:"type"`
	MIC           *string `json:"mic"`
	FIGI          *string `json:"figi"`
	Currency      *string `json:"currency"`
}

// MarketStatus from GET /stock/market-status.
type MarketStatus struct {
	Exchange  string  `json:"exchange"`
	IsOpen    bool    `json:"isOpen"`
	Session   *string `json:"session"`
	Holiday   *string `json:"holiday"`
	Timezone  string  `json:"timezone"`
	Timestamp int64   `json:"t"`
}

// NewsItem from GET /news and GET /company-news. The two endpoints share
// one shape.
type NewsItem struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// NewsCategory values accepted by GET /news.
type NewsCategory string

const (
	NewsGeneral NewsCategory = "general"
	NewsForex   NewsCategory = "forex"
	NewsCrypto  NewsCategory = "crypto"
	NewsMerger  NewsCategory = "merger"
)
