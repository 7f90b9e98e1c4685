package service

// ExecuteNC returns ND00 followed by the service version.
func (s *Service) ExecuteNC(_ []byte) ([]byte, error) {
	return []byte("ND00" + Version), nil
}
