package tgbot

// UI strings, kept in French as the group speaks it.
const (
	msgWelcome             = "Bienvenu à Foot4ever"
	msgWrongChatAddDel     = "Pour s'inscrire ou annuler l'inscription, allez d'abord sur la page du groupe."
	msgWrongChatTeamKeshi  = "Pour arranger les équipes, créez d'abord un groupe, invitez ensuite l'autre capitaine."
	msgYouAreSuspended     = "Oops! Tu es suspendu pour le prochain jeu!"
	msgTooLateDel          = "L'inscription ne peut pas être annulée dans les dernières 48h! Tu contactes les admins stp."
	msgNotSecondCaptain    = "Je ne parlais pas à toi, je parlais au deuxième capitaine"
	msgMissingPermission   = "Tu n'es pas autorisé à utiliser cette commande! Désolé!"
	msgTeamKeshiWelcome    = "je te remercie d'avoir commancé l'arrangement des équipes. Le deuxième capitaine, es-tu aussi prêt?"
	msgValidationFinish    = "Parfait! Tout est nickel, les équipes seront envoyées aux admins."
	msgValidationFinish2   = "Voici les équipes faites par %s et %s:"
	msgNotYourTurn         = "Ce n'est pas ton tour, c'est à %s."
	msgSelectSuspended     = "Tu peux choisir maintenant le joueur suspendu du prochain match:"
	msgSelectUnsuspended   = "Tu peux enlever maintenant le joueur suspendu du prochain match:"
	msgNoSuspendedPlayer   = "Il n'y a aucun joueur suspendu"
	msgSuspendedPlayers    = "Joueurs supendus:"
	msgOperationCancelled  = "L'operation a été annulée."
	msgTryToDel            = "a voulu annulé mais je l'ai empêché! Tu veux l'appeler peut-être?"
	msgNextWeekProg        = "Le prochain jeu:"
	msgReserve             = "Les réserves"
	msgTeamKeshiIsRunning  = "L'arrangement des équipes est en train! Pour recommancer, il faut d'abord annuler celui d'en cours."
	msgBadSetProg          = "Le format doit être 'date heure, centre',\npar exemple: 01/01/2019 20:30, 0"
	msgSetProgSucceed      = "Le changement suivant a effectué avec du succès:"
	msgSignupNotStarted    = "La date du prochain jeu n'est pas encore définie."
	msgNextPotentialDate   = "45 days later will be %s %s"
	msgSignupNotAuthorized = "Stp mets d'abord un prénom et/ou nom sur ton profile Telegram puis réessaie."
)

type command struct {
	Name string
	Desc string
}

var publicCmds = []command{
	{"add", "S'inscrire dans le prochain match"},
	{"del", "Annuler l'inscription"},
	{"prog", "Afficher le prochain programme du jeu"},
	{"players", "Afficher les joueurs du prochain jeu"},
	{"arrange", "Arranger les équipes"},
}

var adminCmds = []command{
	{"add", "S'inscrire dans le prochain match"},
	{"del", "Annuler l'inscription"},
	{"add_susp", "Susprendre un joueur"},
	{"del_susp", "Annuler la suspension d'un joueur"},
	{"set_prog", "Mettre le prochain jeu"},
	{"all", "Afficher tous les noms"},
	{"next", "Afficher le jour dans 45 jours"},
}
