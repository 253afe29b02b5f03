package main

import (
	"datadex/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.LedgerStateModel{},
		model.ReceiptModel{},
		model.BurnRequestModel{},
		model.StoreModel{},
		model.ItemModel{},
		model.PurchaseModel{},
		model.SellerBalanceModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.RevenueSplitModel{},
		model.ExchangeRateModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
