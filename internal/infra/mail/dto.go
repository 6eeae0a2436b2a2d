package mail

type VisitAlertData struct {
	Corretor    string
	LeadNome    string
	LeadEmail   string
	Telefone    string
	Cidade      string
	Temperatura int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
