package marketdata

// companyNames maps PSX ticker symbols to their listed company names. The
// tick endpoint does not return a display name, so it is resolved locally.
var companyNames = map[string]string{
	"AICL":  "Adamjee Insurance Company Limited",
	"AKBL":  "Askari Bank Limited",
	"APL":   "Attock Petroleum Limited",
	"ATRL":  "Attock Refinery Limited",
	"BAFL":  "Bank Alfalah Limited",
	"BAHL":  "Bank AL Habib Limited",
	"BOP":   "The Bank of Punjab",
	"CHCC":  "Cherat Cement Company Limited",
	"CIT":   "Citi Pharma Limited",
	"DGKC":  "D.G. Khan Cement Company Limited",
	"EFERT": "Engro Fertilizers Limited",
	"ENGRO": "Engro Holdings Limited",
	"EPCL":  "Engro Polymer & Chemicals Limited",
	"FABL":  "Faysal Bank Limited",
	"FCCL":  "Fauji Cement Company Limited",
	"FFC":   "Fauji Fertilizer Company Limited",
	"GAL":   "Ghandhara Automobiles Limited",
	"GHGL":  "Ghani Glass Limited",
	"HBL":   "Habib Bank Limited",
	"HCAR":  "Honda Atlas Cars (Pakistan) Limited",
	"HUBC":  "The Hub Power Company Limited",
	"ILP":   "Interloop Limited",
	"INDU":  "Indus Motor Company Limited",
	"ISL":   "International Steels Limited",
	"KAPCO": "Kot Addu Power Company Limited",
	"KEL":   "K-Electric Limited",
	"KOHC":  "Kohat Cement Company Limited",
	"KTML":  "Kohinoor Textile Mills Limited",
	"LUCK":  "Lucky Cement Limited",
	"MARI":  "Mari Energies Limited",
	"MCB":   "MCB Bank Limited",
	"MEBL":  "Meezan Bank Limited",
	"MLCF":  "Maple Leaf Cement Factory Limited",
	"MTL":   "Millat Tractors Limited",
	"NBP":   "National Bank of Pakistan",
	"NML":   "Nishat Mills Limited",
	"OGDC":  "Oil & Gas Development Company Limited",
	"PAEL":  "Pak Elektron Limited",
	"PIBTL": "Pakistan International Bulk Terminal Limited",
	"PIOC":  "Pioneer Cement Limited",
	"POL":   "Pakistan Oilfields Limited",
	"PPL":   "Pakistan Petroleum Limited",
	"PSMC":  "Pak Suzuki Motor Company Limited",
	"PSO":   "Pakistan State Oil Company Limited",
	"PSX":   "Pakistan Stock Exchange Limited",
	"PTC":   "Pakistan Telecommunication Company Limited",
	"SEARL": "The Searle Company Limited",
	"SNGP":  "Sui Northern Gas Pipelines Limited",
	"SSGC":  "Sui Southern Gas Company Limited",
	"SYS":   "Systems Limited",
	"TGL":   "Tariq Glass Industries Limited",
	"TRG":   "TRG Pakistan Limited",
	"UBL":   "United Bank Limited",
	"UNITY": "Unity Foods Limited",
}

// CompanyName resolves a symbol to its company name, falling back to the
// symbol itself for unknown tickers.
func CompanyName(symbol string) string {
	if name, ok := companyNames[symbol]; ok {
		return name
	}
	return symbol
}
