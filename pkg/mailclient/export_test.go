package mailclient

func NewBrowserOpenerWithFunc(open func(string) error) *BrowserOpener {
	return &BrowserOpener{open: open}
}
