package broken

type Bad struct {
	Name string `fievar:"trans=Qx"`
}
