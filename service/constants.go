package service

const (
	DefaultMarketValue              = 500_000.0
	DefaultAnnualGrowth             = 0.05
	DefaultRentalTaxAndDepreciation = 0.10
	DefaultCapitalGainTax           = 0.20
	DefaultTransactionFee           = 0.05
	DefaultMortgageAnnualRate       = 0.04
	DefaultAnnualPropertyTax        = 0.015
	DefaultDiscountAnnualRate       = 0.015 // costo de oportunidad del inversionista
	DefaultMortgageOriginationFee   = 0.01
	DefaultDownpayment              = 0.03
	DefaultManagementFee            = 0.08

	DefaultHoldingYears = 30
	MinHoldingYears     = 1
	MaxHoldingYears     = 100 // 1200 filas como máximo

	// Evita comparar rangos demasiado grandes en una sola petición
	MaxHorizonRangeYears = 40

	MonthsPerYear = 12

	// Mes del año en que se paga el impuesto predial anual
	PropertyTaxMonth = 12
)
