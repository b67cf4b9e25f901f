package token

// DigitalAsset is a read-model projection of an indexed asset as
// reported by a DAS-enabled RPC node. Fungible assets carry Decimals
// and Supply; NFT-shaped assets leave them zero.
type DigitalAsset struct {
	ID        string
	Interface string
	Name      string
	Symbol    string
	URI       string
	Owner     string
	Decimals  uint8
	Supply    uint64
}
