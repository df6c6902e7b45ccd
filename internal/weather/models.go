package weather

// Temperature is one temperature reading. A nil field means no data; otherwise the
// value is a trimmed numeric string as published upstream.
type Temperature struct {
	Celsius    *string `json:"celsius"`
	Fahrenheit *string `json:"fahrenheit"`
}

// TemperatureRange is the min/max pair of a forecast day.
type TemperatureRange struct {
	Min *Temperature `json:"min" validate:"required"`
	Max *Temperature `json:"max" validate:"required"`
}

// ChanceOfRain holds the precipitation chance for four fixed six-hour buckets. Every
// bucket must be present; an empty string is allowed.
type ChanceOfRain struct {
	T00_06 *string `json:"T00_06" validate:"required"`
	T06_12 *string `json:"T06_12" validate:"required"`
	T12_18 *string `json:"T12_18" validate:"required"`
	T18_24 *string `json:"T18_24" validate:"required"`
}

// ForecastDetail is the narrative part of a forecast day.
type ForecastDetail struct {
	Weather *string `json:"weather"`
	Wind    *string `json:"wind"`
	Wave    *string `json:"wave"`
}

type ForecastImage struct {
	Title  string `json:"title"`
	URL    string `json:"url" validate:"required,url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DailyForecastDay is one row of the daily feed. Position in DailyFeed.Forecasts is
// significant: 0 is today, 1 tomorrow, 2 the day after.
type DailyForecastDay struct {
	Date         string            `json:"date" validate:"required"`
	DateLabel    string            `json:"dateLabel"`
	Telop        string            `json:"telop"`
	Detail       *ForecastDetail   `json:"detail" validate:"required"`
	Temperature  *TemperatureRange `json:"temperature" validate:"required"`
	ChanceOfRain *ChanceOfRain     `json:"chanceOfRain" validate:"required"`
	Image        ForecastImage     `json:"image"`
}

type Description struct {
	PublicTime          string `json:"publicTime"`
	PublicTimeFormatted string `json:"publicTimeFormatted"`
	HeadlineText        string `json:"headlineText"`
	BodyText            string `json:"bodyText"`
	Text                string `json:"text"`
}

type Location struct {
	Area       string `json:"area"`
	Prefecture string `json:"prefecture"`
	District   string `json:"district"`
	City       string `json:"city"`
}

type Provider struct {
	Link string  `json:"link" validate:"required,url"`
	Name string  `json:"name"`
	Note *string `json:"note,omitempty"`
}

type CopyrightImage struct {
	Title  string `json:"title"`
	Link   string `json:"link" validate:"required,url"`
	URL    string `json:"url" validate:"required,url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Copyright is the attribution block of the daily feed. It is passed through untouched.
type Copyright struct {
	Title    string         `json:"title"`
	Link     string         `json:"link" validate:"required,url"`
	Image    CopyrightImage `json:"image"`
	Provider []Provider     `json:"provider" validate:"required,dive"`
}

// DailyFeed is the document returned by the daily (3-day) forecast feed.
type DailyFeed struct {
	PublicTime          string             `json:"publicTime" validate:"required"`
	PublicTimeFormatted string             `json:"publicTimeFormatted" validate:"required"`
	PublishingOffice    string             `json:"publishingOffice" validate:"required"`
	Title               string             `json:"title"`
	Link                string             `json:"link" validate:"required,url"`
	Description         *Description       `json:"description" validate:"required"`
	Forecasts           []DailyForecastDay `json:"forecasts" validate:"required,dive"`
	Location            *Location          `json:"location" validate:"required"`
	Copyright           *Copyright         `json:"copyright" validate:"required"`
}

// MergedForecast has the shape of DailyFeed with the temperatures reconciled against
// the weekly feed. It is not modified after Reconcile returns it.
type MergedForecast DailyFeed
