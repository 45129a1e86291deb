package chain

import "fmt"

func (client *Client) ExplorerTxURL(txID string) string {
	return fmt.Sprintf("%s/tx/%s", client.explorerURL, txID)
}

func (client *Client) ExplorerAssetURL(asaID uint64) string {
	return fmt.Sprintf("%s/asset/%d", client.explorerURL, asaID)
}

// ShortenAddress renders a wallet address as "ABCD...WXYZ" for display.
func ShortenAddress(address string, chars int) string {
	if address == "" {
		return ""
	}
	if chars <= 0 {
		chars = 4
	}
	if len(address) <= chars*2 {
		return address
	}
	return address[:chars] + "..." + address[len(address)-chars:]
}
