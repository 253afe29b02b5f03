// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Revenue-split slots. The platform slot funds the marketplace operator,
// the facilitator slot funds the store's declared location address.
const (
	SplitSlotPlatform    = 0
	SplitSlotFacilitator = 1
)

// Default split percentages applied when the registry is first seeded.
const (
	DefaultPlatformPercentage    = 15
	DefaultFacilitatorPercentage = 5
)

// Roles carried in JWT access tokens.
const (
	RoleAdmin      = "admin"
	RoleMintPauser = "mint-pauser"
)

// Event types published to the event bus.
const (
	EventMinted            = "ledger.minted"
	EventBurned            = "ledger.burned"
	EventBridgeMinted      = "ledger.bridge_minted"
	EventTransferred       = "ledger.transferred"
	EventMintPauseChanged  = "ledger.mint_pause_changed"
	EventMinterAdded       = "ledger.minter_added"
	EventItemSettled       = "market.item_settled"
	EventPriceChanged      = "market.price_changed"
	EventSaleChanged       = "market.sale_changed"
	EventWithdrawn         = "market.withdrawn"
	EventOrderCreated      = "order.created"
	EventOrderItemAdded    = "order.item_added"
	EventOrderItemExists   = "order.item_already_exists"
	EventOrderCancelled    = "order.cancelled"
	EventOrderPurchased    = "order.purchased"
	EventPercentageChanged = "registry.percentage_changed"
	EventRateChanged       = "registry.rate_changed"
	EventStoreRegistered   = "registry.store_registered"
)
