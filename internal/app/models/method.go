package models

// Collection methods as the vendor API spells them.
const (
	MethodTestkit          = "testkit"
	MethodWalkIn           = "walk_in_test"
	MethodAtHomePhlebotomy = "at_home_phlebotomy"
)

func MethodSupported(supported []string, method string) bool {
	for _, m := range supported {
		if m == method {
			return true
		}
	}
	return false
}
