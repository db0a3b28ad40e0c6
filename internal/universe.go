package internal

import (
	"fmt"
	"sort"
)

// Static instrument universe the dashboard is built around. Symbols are
// Yahoo Finance tickers; central bank entries are FRED series ids.

var EquityIndices = map[string]map[string]string{
	"United States": {
		"S&P 500":                  "^GSPC",
		"NASDAQ Composite":         "^IXIC",
		"Dow Jones Industrial":     "^DJI",
		"Russell 2000":             "^RUT",
		"S&P 400 MidCap":           "^MID",
		"NYSE Composite":           "^NYA",
		"Wilshire 5000":            "^W5000",
		"S&P 100":                  "^OEX",
		"Dow Jones Transportation": "^DJT",
		"Dow Jones Utility":        "^DJU",
	},
	"Europe": {
		"CAC 40 (France)":  "^FCHI",
		"Euro Stoxx 50":    "^STOXX50E",
		"DAX (Germany)":    "^GDAXI",
		"FTSE 100 (UK)":    "^FTSE",
		"IBEX 35 (Spain)":  "^IBEX",
		"FTSE MIB (Italy)": "FTSEMIB.MI",
	},
	"Asia Pacific": {
		"Nikkei 225 (Japan)":         "^N225",
		"Hang Seng (Hong Kong)":      "^HSI",
		"Shanghai Composite (China)": "000001.SS",
		"TSEC (Taiwan)":              "^TWII",
		"Nifty 50 (India)":           "^NSEI",
	},
	"Emerging Markets": {
		"Bovespa (Brazil)": "^BVSP",
		"IPC (Mexico)":     "^MXX",
	},
}

var EquityLists = map[string][]string{
	"S&P 500": {
		"AAPL", "MSFT", "NVDA", "GOOGL", "AMZN", "TSLA", "META", "BRK-B", "JPM", "V",
		"UNH", "XOM", "LLY", "JNJ", "WMT", "MA", "PG", "HD", "CVX", "MRK",
	},
	"NASDAQ Composite": {
		"AMD", "INTC", "CSCO", "ADBE", "PYPL", "NFLX", "CMCSA", "PEP", "COST", "AVGO",
		"QCOM", "TXN", "AMGN", "INTU", "ISRG",
	},
	"Dow Jones Industrial":  {"AXP", "BA", "CAT", "CRM", "CSCO", "CVX", "DIS", "DOW", "GS", "HON"},
	"CAC 40 (France)":       {"MC.PA", "AIR.PA", "SAN.PA", "OR.PA", "AI.PA", "BNP.PA", "CAP.PA", "RI.PA", "SAF.PA", "DG.PA"},
	"DAX (Germany)":         {"SAP.DE", "SIE.DE", "ALV.DE", "DTE.DE", "BMW.DE", "BAYN.DE", "DBK.DE", "VOW3.DE", "MUV2.DE", "ADS.DE"},
	"FTSE 100 (UK)":         {"HSBA.L", "BP.L", "GSK.L", "RIO.L", "ULVR.L", "AZN.L", "BATS.L", "DGE.L", "VOD.L", "NG.L"},
	"Nikkei 225 (Japan)":    {"7203.T", "9984.T", "6758.T", "6861.T", "8306.T", "9432.T", "9433.T", "9437.T", "9983.T", "8766.T"},
	"Hang Seng (Hong Kong)": {"0700.HK", "0939.HK", "1398.HK", "0388.HK", "0005.HK", "1299.HK", "2318.HK", "3988.HK", "2628.HK", "0941.HK"},
	"Nifty 50 (India)":      {"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS", "HINDUNILVR.NS", "ITC.NS", "SBIN.NS", "BHARTIARTL.NS", "KOTAKBANK.NS"},
	"Bovespa (Brazil)":      {"PETR4.SA", "VALE3.SA", "ITUB4.SA", "BBDC4.SA", "ABEV3.SA", "WEGE3.SA", "BBAS3.SA", "B3SA3.SA", "RENT3.SA", "SUZB3.SA"},
	"IPC (Mexico)":          {"WALMEX.MX", "AMXL.MX", "FEMSAUBD.MX", "GMEXICOB.MX", "GFNORTEO.MX"},
	"Euro Stoxx 50":         {"ASML.AS", "LIN.DE", "SAN.PA", "SAP.DE", "AIR.PA", "MC.PA", "OR.PA", "SIEGY", "ALV.DE", "AI.PA"},
}

var G10Currencies = []string{"EUR", "JPY", "GBP", "CHF", "CAD", "AUD", "NZD", "NOK", "SEK", "DKK", "USD"}

var EmergingCurrencies = []string{"CNY", "INR", "BRL", "MXN", "ZAR", "TRY", "RUB", "KRW", "SGD", "HKD"}

var MajorCrosses = map[string]string{
	"EUR/GBP": "EURGBP=X",
	"EUR/JPY": "EURJPY=X",
	"GBP/JPY": "GBPJPY=X",
	"EUR/CHF": "EURCHF=X",
	"AUD/CAD": "AUDCAD=X",
	"EUR/AUD": "EURAUD=X",
	"GBP/AUD": "GBPAUD=X",
}

var MajorIndices = map[string]string{
	"S&P 500":       "^GSPC",
	"NASDAQ":        "^IXIC",
	"Dow Jones":     "^DJI",
	"Euro Stoxx 50": "^STOXX50E",
	"DAX":           "^GDAXI",
	"FTSE 100":      "^FTSE",
	"Nikkei 225":    "^N225",
	"Hang Seng":     "^HSI",
}

var MajorFXPairs = map[string]string{
	"EUR/USD": "EURUSD=X",
	"GBP/USD": "GBPUSD=X",
	"USD/JPY": "JPY=X",
	"USD/CHF": "CHF=X",
	"AUD/USD": "AUDUSD=X",
	"USD/CAD": "CAD=X",
}

var KeyIndicators = map[string]string{
	"VIX":       "^VIX",
	"DXY":       "DX-Y.NYB",
	"Gold":      "GC=F",
	"Oil (WTI)": "CL=F",
}

type CommodityInstrument struct {
	Category string
	Name     string
	Symbol   string
}

var Commodities = []CommodityInstrument{
	{Category: "Metals", Name: "Gold", Symbol: "GC=F"},
	{Category: "Metals", Name: "Silver", Symbol: "SI=F"},
	{Category: "Metals", Name: "Copper", Symbol: "HG=F"},
	{Category: "Metals", Name: "Platinum", Symbol: "PL=F"},
	{Category: "Metals", Name: "Palladium", Symbol: "PA=F"},
	{Category: "Agriculture", Name: "Wheat", Symbol: "ZW=F"},
	{Category: "Agriculture", Name: "Corn", Symbol: "ZC=F"},
	{Category: "Agriculture", Name: "Soybeans", Symbol: "ZS=F"},
	{Category: "Agriculture", Name: "Coffee", Symbol: "KC=F"},
	{Category: "Agriculture", Name: "Sugar", Symbol: "SB=F"},
	{Category: "Agriculture", Name: "Cocoa", Symbol: "CC=F"},
	{Category: "Energy", Name: "WTI Crude Oil", Symbol: "CL=F"},
	{Category: "Energy", Name: "Brent Crude Oil", Symbol: "BZ=F"},
	{Category: "Energy", Name: "Natural Gas", Symbol: "NG=F"},
	{Category: "Energy", Name: "Gasoline", Symbol: "RB=F"},
}

type RateInstrument struct {
	Region     string
	Instrument string
	Symbol     string
}

var ShortTermRates = []RateInstrument{
	{Region: "United States", Instrument: "SOFR (proxy)", Symbol: "SOFR"},
	{Region: "United States", Instrument: "3M (13W T-Bill)", Symbol: "^IRX"},
	{Region: "United States", Instrument: "6M (proxy)", Symbol: "^IRX"},
	{Region: "United States", Instrument: "9M (proxy)", Symbol: "^IRX"},
	{Region: "United States", Instrument: "1Y (proxy)", Symbol: "^IRX"},
	{Region: "Eurozone", Instrument: "ESTR (proxy)", Symbol: "ESTR"},
	{Region: "Eurozone", Instrument: "3M (proxy)", Symbol: "EUR3M=X"},
	{Region: "Eurozone", Instrument: "6M (proxy)", Symbol: "EUR6M=X"},
	{Region: "Eurozone", Instrument: "9M (proxy)", Symbol: "EUR9M=X"},
	{Region: "Eurozone", Instrument: "1Y (proxy)", Symbol: "EUR1Y=X"},
}

var YieldTenors = []string{"2Y", "5Y", "10Y", "20Y", "30Y"}

var YieldCountries = []string{"US", "France", "Germany", "UK", "Spain", "Italy", "China", "Japan"}

// Best-effort Yahoo tickers; non-US entries are 10Y proxies until a better
// sovereign data source lands.
var SovereignYieldTickers = map[[2]string]string{
	{"US", "2Y"}:       "^UST2Y",
	{"US", "5Y"}:       "^FVX",
	{"US", "10Y"}:      "^TNX",
	{"US", "20Y"}:      "^TYX",
	{"US", "30Y"}:      "^TYX",
	{"France", "10Y"}:  "^TNX",
	{"Germany", "10Y"}: "^TNX",
	{"UK", "10Y"}:      "^TNX",
	{"Spain", "10Y"}:   "^TNX",
	{"Italy", "10Y"}:   "^TNX",
	{"China", "10Y"}:   "^TNX",
	{"Japan", "10Y"}:   "^TNX",
}

type CentralBank struct {
	Name     string
	SeriesID string
}

var CentralBanks = []CentralBank{
	{Name: "Federal Reserve (FED) - Fedfund proxy", SeriesID: "FEDFUNDS"},
	{Name: "European Central Bank (ECB)", SeriesID: "ECBDFR"},
	{Name: "Bank of England (BOE) - Sonia proxy", SeriesID: "IUDSOIA"},
	{Name: "Bank of Japan (BOJ)", SeriesID: "IRSTCI01JPM156N"},
	{Name: "Swiss National Bank (SNB)", SeriesID: "ECBMLFR"},
}

type EconomicIndicatorRow struct {
	Country       string `csv:"Country" json:"country"`
	GDPQoQ        string `csv:"GDP QoQ" json:"gdpQoQ"`
	Inflation     string `csv:"Inflation" json:"inflation"`
	CoreInflation string `csv:"Core Inflation" json:"coreInflation"`
	Unemployment  string `csv:"Unemployment" json:"unemployment"`
	PMI           string `csv:"PMI" json:"pmi"`
	LastUpdate    string `csv:"Last Update" json:"lastUpdate"`
}

// EconomicIndicators is a static reference table; there is no live provider
// wired for these figures.
var EconomicIndicators = []EconomicIndicatorRow{
	{Country: "United States", GDPQoQ: "4.9%", Inflation: "3.2%", CoreInflation: "4.0%", Unemployment: "3.9%", PMI: "50.0", LastUpdate: "Nov 2023"},
	{Country: "Eurozone", GDPQoQ: "0.1%", Inflation: "2.9%", CoreInflation: "4.2%", Unemployment: "6.5%", PMI: "43.1", LastUpdate: "Nov 2023"},
	{Country: "United Kingdom", GDPQoQ: "0.0%", Inflation: "4.6%", CoreInflation: "5.7%", Unemployment: "4.2%", PMI: "44.8", LastUpdate: "Nov 2023"},
	{Country: "Japan", GDPQoQ: "-0.5%", Inflation: "3.3%", CoreInflation: "2.9%", Unemployment: "2.6%", PMI: "48.1", LastUpdate: "Nov 2023"},
	{Country: "China", GDPQoQ: "1.3%", Inflation: "-0.2%", CoreInflation: "0.6%", Unemployment: "5.0%", PMI: "49.4", LastUpdate: "Nov 2023"},
}

// FXSymbol builds the Yahoo ticker for a currency pair. Pairs quoted off USD
// use the short form, e.g. USD/JPY -> "JPY=X"; everything else is
// "<BASE><UNIT>=X".
func FXSymbol(base, unit string) string {
	if base == "USD" {
		return fmt.Sprintf("%s=X", unit)
	}
	return fmt.Sprintf("%s%s=X", base, unit)
}

// AllCurrencies returns the sorted union of G10 and emerging currencies.
func AllCurrencies() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, group := range [][]string{G10Currencies, EmergingCurrencies} {
		for _, ccy := range group {
			if !seen[ccy] {
				seen[ccy] = true
				out = append(out, ccy)
			}
		}
	}
	sort.Strings(out)
	return out
}
